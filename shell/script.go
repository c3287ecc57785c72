package shell

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/cjoudrey/gluahttp"
	"github.com/rs/zerolog/log"
	lua "github.com/yuin/gopher-lua"
	luajson "layeh.com/gopher-json"
)

const luaShellGlobal = "blockbot_shell"

// Commands a script can call, as blockbot_<name>("rest of the line").
var scriptCommands = []string{
	"new", "weights", "piece", "left", "right", "rotate", "gen", "commit",
	"add", "auto", "board", "analyze",
}

func getShell(L *lua.LState) *ShellController {
	shell := L.GetGlobal(luaShellGlobal)
	ud, ok := shell.(*lua.LUserData)
	if !ok {
		panic("luserdata not right type")
	}
	sc, ok := ud.Value.(*ShellController)
	if !ok {
		panic("shellcontroller not right type")
	}
	return sc
}

// luaCommand runs a shell command. It returns the command's output, or nil
// and the error message.
func luaCommand(name string) lua.LGFunction {
	return func(L *lua.LState) int {
		sc := getShell(L)
		cmd, err := extractFields(strings.TrimSpace(name + " " + L.OptString(1, "")))
		if err == nil {
			var r *Response
			r, err = sc.dispatch(cmd)
			if err == nil {
				if r == nil {
					L.Push(lua.LString(""))
				} else {
					L.Push(lua.LString(r.message))
				}
				return 1
			}
		}
		log.Err(err).Str("cmd", name).Msg("error-executing-script-command")
		L.Push(lua.LNil)
		L.Push(lua.LString(err.Error()))
		return 2
	}
}

// State returns a table describing the current game, or nil without one.
func State(L *lua.LState) int {
	sc := getShell(L)
	if sc.player == nil {
		L.Push(lua.LNil)
		return 1
	}
	t := L.NewTable()
	t.RawSetString("id", lua.LString(sc.player.Uid()))
	t.RawSetString("playing", lua.LBool(sc.player.IsPlaying()))
	t.RawSetString("pieces", lua.LNumber(sc.player.Turn()))
	t.RawSetString("lines", lua.LNumber(sc.player.LinesCleared()))
	t.RawSetString("height", lua.LNumber(sc.player.Board().HighestOccupiedRow()))
	w := L.NewTable()
	for _, v := range sc.player.Weights().Slice() {
		w.Append(lua.LNumber(v))
	}
	t.RawSetString("weights", w)
	L.Push(t)
	return 1
}

// script runs a Lua file. Besides the blockbot_* functions, scripts can
// require "json" and "http". Extra arguments are in the global table arg.
// If the script sets a global string named result, it is the response.
func (sc *ShellController) script(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		return nil, errors.New("need arguments for script")
	}
	filepath := cmd.args[0]

	L := lua.NewState()
	defer L.Close()

	luajson.Preload(L)
	L.PreloadModule("http", gluahttp.NewHttpModule(&http.Client{Timeout: 30 * time.Second}).Loader)

	lsc := L.NewUserData()
	lsc.Value = sc
	L.SetGlobal(luaShellGlobal, lsc)
	for _, name := range scriptCommands {
		L.SetGlobal("blockbot_"+name, L.NewFunction(luaCommand(name)))
	}
	L.SetGlobal("blockbot_state", L.NewFunction(State))

	args := L.NewTable()
	for _, a := range cmd.args[1:] {
		args.Append(lua.LString(a))
	}
	L.SetGlobal("arg", args)

	if err := L.DoFile(filepath); err != nil {
		log.Err(err).Str("script", filepath).Msg("script-failed")
		return nil, err
	}
	if result, ok := L.GetGlobal("result").(lua.LString); ok {
		return msg(string(result)), nil
	}
	return nil, nil
}
