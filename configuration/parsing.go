// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/orderedmap/fault"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultWorkers        = 8
	defaultKeysPerWorker  = 10000
	defaultRounds         = 3
	defaultBatchSize      = 64
	defaultRateLimit      = 0 // unlimited
	defaultReportInterval = 1000

	defaultLogDirectory = "log"
	defaultLogFile      = "avlstress.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	maximumWorkers = 1024
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// Configuration - settings for one workload run
type Configuration struct {
	DataDirectory  string               `gluamapper:"data_directory" json:"data_directory"`
	PidFile        string               `gluamapper:"pidfile" json:"pidfile"`
	Workers        int                  `gluamapper:"workers" json:"workers"`
	KeysPerWorker  int                  `gluamapper:"keys_per_worker" json:"keys_per_worker"`
	Rounds         int                  `gluamapper:"rounds" json:"rounds"`
	BatchSize      int                  `gluamapper:"batch_size" json:"batch_size"`
	RateLimit      float64              `gluamapper:"rate_limit" json:"rate_limit"`
	ReportInterval int                  `gluamapper:"report_interval" json:"report_interval"`
	Logging        logger.Configuration `gluamapper:"logging" json:"logging"`
}

// GetConfiguration - read decode and verify the configuration
func GetConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	if _, err := os.Stat(configurationFileName); nil != err {
		return nil, fault.ErrNotFoundConfigFile
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	// the Lua table is merged into this map so never hand out the defaults
	levels := make(LoglevelMap, len(defaultLogLevels))
	for tag, level := range defaultLogLevels {
		levels[tag] = level
	}

	options := &Configuration{
		DataDirectory:  defaultDataDirectory,
		PidFile:        "", // no PidFile by default
		Workers:        defaultWorkers,
		KeysPerWorker:  defaultKeysPerWorker,
		Rounds:         defaultRounds,
		BatchSize:      defaultBatchSize,
		RateLimit:      defaultRateLimit,
		ReportInterval: defaultReportInterval,

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    levels,
		},
	}

	if err := ParseConfigurationFile(configurationFileName, options); nil != err {
		return nil, err
	}

	if err := options.validate(); nil != err {
		return nil, err
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("%w: path: %q is not a valid directory", fault.ErrInvalidConfiguration, options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	}
	options.DataDirectory = filepath.Clean(options.DataDirectory)

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("%w: path: %q is not a directory", fault.ErrInvalidConfiguration, options.DataDirectory)
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	mustBeAbsolute := []*string{
		&options.Logging.Directory,
	}
	if "" != options.PidFile {
		mustBeAbsolute = append(mustBeAbsolute, &options.PidFile)
	}
	for _, f := range mustBeAbsolute {
		*f = ensureAbsolute(options.DataDirectory, *f)
	}

	// fail if any directory does not exist
	if fileInfo, err := os.Stat(options.Logging.Directory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("%w: path: %q is not a directory", fault.ErrInvalidConfiguration, options.Logging.Directory)
	}

	return options, nil
}

func (options *Configuration) validate() error {
	if options.Workers <= 0 || options.Workers > maximumWorkers {
		return fmt.Errorf("%w: workers: %d", fault.ErrInvalidConfiguration, options.Workers)
	}
	if options.KeysPerWorker <= 0 {
		return fmt.Errorf("%w: keys_per_worker: %d", fault.ErrInvalidConfiguration, options.KeysPerWorker)
	}
	if options.Rounds <= 0 {
		return fmt.Errorf("%w: rounds: %d", fault.ErrInvalidConfiguration, options.Rounds)
	}
	if options.BatchSize <= 0 {
		return fmt.Errorf("%w: batch_size: %d", fault.ErrInvalidConfiguration, options.BatchSize)
	}
	if options.RateLimit < 0 {
		return fmt.Errorf("%w: rate_limit: %g", fault.ErrInvalidConfiguration, options.RateLimit)
	}
	if options.ReportInterval <= 0 {
		return fmt.Errorf("%w: report_interval: %d", fault.ErrInvalidConfiguration, options.ReportInterval)
	}
	return nil
}

// if path is relative then prepend the directory to it
func ensureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}
