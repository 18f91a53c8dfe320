// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"fmt"

	"github.com/yuin/gluamapper"
	lua "github.com/yuin/gopher-lua"

	"github.com/bitmark-inc/orderedmap/fault"
)

// Lua field names are used exactly as written in the gluamapper tags
var mapper = gluamapper.Mapper{
	Option: gluamapper.Option{
		NameFunc: func(s string) string {
			return s
		},
		TagName: "gluamapper",
	},
}

// ParseConfigurationFile - run a Lua file and map the table it returns
// onto config, a pointer to a tagged structure
//
// the script sees its own file name as arg[0]
func ParseConfigurationFile(fileName string, config interface{}) error {
	L := lua.NewState()
	defer L.Close()

	L.OpenLibs()

	arg := L.NewTable()
	arg.RawSetInt(0, lua.LString(fileName))
	L.SetGlobal("arg", arg)

	if err := L.DoFile(fileName); nil != err {
		return err
	}

	if 0 == L.GetTop() {
		return fmt.Errorf("%w: %q returned no table", fault.ErrInvalidConfiguration, fileName)
	}
	result := L.Get(-1)
	table, ok := result.(*lua.LTable)
	if !ok {
		return fmt.Errorf("%w: %q returned a %s not a table", fault.ErrInvalidConfiguration, fileName, result.Type())
	}

	return mapper.Map(table, config)
}
