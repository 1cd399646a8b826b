package actions

import (
	"context"
	"fmt"
	"strings"

	lua "github.com/yuin/gopher-lua"
	"github.com/yuin/gopher-lua/parse"

	"github.com/grovetools/sitekeys/pkg/host"
	"github.com/grovetools/sitekeys/pkg/keys"
)

// Lua compiles script once and returns a callback that runs it against h.
// Every invocation gets a fresh state with only the base, table, string and
// math libraries, plus a page table:
//
//	page.open_omnibar(type, extra)
//	page.open_link(url, new_tab)
//	page.clipboard()   -- clipboard text
//	page.meta(name)    -- <meta> content or nil
func Lua(h host.Host, script string) (keys.Callback, error) {
	chunk, err := parse.Parse(strings.NewReader(script), "<binding>")
	if err != nil {
		return nil, fmt.Errorf("parsing lua: %w", err)
	}
	proto, err := lua.Compile(chunk, "<binding>")
	if err != nil {
		return nil, fmt.Errorf("compiling lua: %w", err)
	}

	return func(ctx context.Context) (err error) {
		if err := ctx.Err(); err != nil {
			return err
		}
		L := newSandbox()
		defer L.Close()
		L.SetContext(ctx)

		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("lua panic: %v", r)
			}
		}()

		L.SetGlobal("page", pageTable(ctx, L, h))
		L.Push(L.NewFunctionFromProto(proto))
		if err := L.PCall(0, lua.MultRet, nil); err != nil {
			return fmt.Errorf("running lua: %w", err)
		}
		return nil
	}, nil
}

func newSandbox() *lua.LState {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "require"} {
		L.SetGlobal(name, lua.LNil)
	}
	return L
}

func pageTable(ctx context.Context, L *lua.LState, h host.Host) *lua.LTable {
	return L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"open_omnibar": func(L *lua.LState) int {
			req := host.OmnibarRequest{Type: L.CheckString(1), Extra: L.OptString(2, "")}
			if err := h.OpenOmnibar(req); err != nil {
				L.RaiseError("open_omnibar: %v", err)
			}
			return 0
		},
		"open_link": func(L *lua.LState) int {
			if err := h.OpenLink(L.CheckString(1), L.OptBool(2, false)); err != nil {
				L.RaiseError("open_link: %v", err)
			}
			return 0
		},
		"clipboard": func(L *lua.LState) int {
			text, err := h.ReadClipboard(ctx)
			if err != nil {
				L.RaiseError("clipboard: %v", err)
			}
			L.Push(lua.LString(text))
			return 1
		},
		"meta": func(L *lua.LState) int {
			v, ok := h.MetaContent(L.CheckString(1))
			if !ok {
				L.Push(lua.LNil)
				return 1
			}
			L.Push(lua.LString(v))
			return 1
		},
	})
}
