package actions

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grovetools/sitekeys/pkg/host"
)

func TestLua_PagePrimitives(t *testing.T) {
	h := host.NewMemory(host.WithClipboard("gopher lua"))
	h.SetMeta("citation_doi", "10.1/abc")

	cb, err := Lua(h, `
		page.open_link("https://www.google.com/search?q=" .. string.gsub(page.clipboard(), " ", "+"), true)
		local doi = page.meta("citation_doi")
		if doi ~= nil then
			page.open_omnibar("SearchEngine", doi)
		end
		if page.meta("missing") == nil then
			page.open_omnibar("Commands")
		end
	`)
	require.NoError(t, err)
	require.NoError(t, cb(context.Background()))

	assert.Equal(t, []host.OpenedLink{{URL: "https://www.google.com/search?q=gopher+lua", NewTab: true}}, h.Links())
	assert.Equal(t, []host.OmnibarRequest{
		{Type: "SearchEngine", Extra: "10.1/abc"},
		{Type: "Commands"},
	}, h.OmnibarRequests())
}

func TestLua_FreshStatePerRun(t *testing.T) {
	h := host.NewMemory()
	cb, err := Lua(h, `
		if counter == nil then counter = 0 end
		counter = counter + 1
		page.open_omnibar("Run", tostring(counter))
	`)
	require.NoError(t, err)

	require.NoError(t, cb(context.Background()))
	require.NoError(t, cb(context.Background()))
	assert.Equal(t, []host.OmnibarRequest{{Type: "Run", Extra: "1"}, {Type: "Run", Extra: "1"}}, h.OmnibarRequests())
}

func TestLua_Errors(t *testing.T) {
	h := host.NewMemory()

	t.Run("syntax error fails at compile time", func(t *testing.T) {
		_, err := Lua(h, `page.open_link(`)
		assert.Error(t, err)
	})

	t.Run("runtime error is returned", func(t *testing.T) {
		cb, err := Lua(h, `error("boom")`)
		require.NoError(t, err)
		err = cb(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "boom")
	})

	t.Run("host error surfaces", func(t *testing.T) {
		cb, err := Lua(h, `page.open_link("")`)
		require.NoError(t, err)
		assert.Error(t, cb(context.Background()))
	})

	t.Run("no file or os access", func(t *testing.T) {
		for _, script := range []string{`os.exit(1)`, `io.open("/etc/passwd")`, `dofile("/tmp/x.lua")`, `require("os")`} {
			cb, err := Lua(h, script)
			require.NoError(t, err)
			assert.Error(t, cb(context.Background()), script)
		}
	})

	t.Run("canceled context", func(t *testing.T) {
		cb, err := Lua(h, `page.open_omnibar("x")`)
		require.NoError(t, err)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		assert.Error(t, cb(ctx))
	})
}
