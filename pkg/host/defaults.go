package host

import "github.com/grovetools/sitekeys/pkg/keys"

var standardNormal = []DefaultBinding{
	{"?", "Show usage"}, {":", "Open commands"}, {"L", "Regional hints mode"},
	{"r", "Reload the page"}, {"j", "Scroll down"}, {"k", "Scroll up"},
	{"d", "Scroll half page down"}, {"u", "Scroll half page up"}, {"e", "Scroll half page up"},
	{"gg", "Scroll to the top"}, {"G", "Scroll to the bottom"},
	{"E", "Go one tab left"}, {"R", "Go one tab right"},
	{"S", "Go back in history"}, {"D", "Go forward in history"},
	{"f", "Open a link"}, {"F", "Open a link in non-active new tab"}, {"gf", "Open a link in non-active new tab"},
	{"x", "Close current tab"}, {"X", "Restore closed tab"}, {"T", "Choose a tab"}, {"t", "Open a URL"},
	{"i", "Go to edit box"}, {"I", "Go to edit box with vim editor"}, {"/", "Find in current page"},
	{"n", "Next found text"}, {"N", "Previous found text"}, {"p", "Enter ephemeral PassThrough mode"},
	{"q", "Click on an Image or a button"}, {"Q", "Open omnibar for word translation"},
	{"ab", "Bookmark current page"}, {"ag", "Open Chrome Flags"}, {"af", "Open a link in new tab"},
	{"sb", "Search selected with baidu"}, {"sw", "Search selected with bing"},
	{"ob", "Open Search with alias b"}, {"oe", "Open Search with alias e"},
	{"ow", "Open Search with alias w"}, {"oy", "Open Search with alias y"},
	{"cp", "Toggle proxy for current site"}, {";cp", "Copy proxy info"}, {";ap", "Apply proxy info from clipboard"},
	{"spa", "Set proxy mode always"}, {"spb", "Set proxy mode byPass"}, {"spd", "Set proxy mode direct"},
	{"sps", "Set proxy mode system"}, {"spc", "Set proxy mode clear"}, {"spi", "Set proxy mode pac"},
	{"sfr", "Show failed web requests"}, {"zQ", "Quit"}, {"zz", "Make current tab full screen"},
	{"zR", "Reset zoom level"}, {";s", "Toggle PDF viewer"}, {"<Ctrl-j>", "Toggle mouse query"},
	{"<Ctrl-h>", "Mouse over elements"}, {"gxt", "Close tab on left"}, {"gxT", "Close tab on right"},
	{"y", "Copy"}, {"yy", "Copy current page's URL"}, {"yY", "Copy all tabs's url"},
	{"yh", "Copy current page's host"}, {"yl", "Copy current page's title"}, {"yp", "Copy URL path of current page"},
	{"ya", "Copy a link URL to the clipboard"}, {"yma", "Copy multiple link URLs to the clipboard"},
	{"yc", "Copy a column of a table"}, {"ymc", "Copy multiple columns of a table"},
	{"yv", "Yank text of an element"}, {"ymv", "Yank text of multiple elements"},
	{"yq", "Copy pre text"}, {"yi", "Yank text of an input"}, {"ys", "Copy current page's source"},
	{"yj", "Copy current settings"}, {"yQ", "Copy all query history of OmniQuery"},
	{"yf", "Copy form data in JSON on current page"}, {"yd", "Copy current downloading URL"},
	{"yg", "Capture current page"}, {"yG", "Capture current full page"},
}

var standardVisual = []DefaultBinding{
	{"h", "Backward character"}, {"l", "Forward character"}, {"j", "Forward line"}, {"k", "Backward line"},
	{"w", "Forward word"}, {"b", "Backward word"}, {"0", "Beginning of line"}, {"$", "End of line"},
	{"gg", "Beginning of document"}, {"G", "End of document"}, {"o", "Go to other end of selection"},
	{"y", "Copy selected text"}, {"n", "Next found text"}, {"N", "Previous found text"},
	{"*", "Find selected text"}, {"V", "Select a line"},
}

var standardSearchAliases = []SearchAlias{
	{Alias: "g", Name: "google", Search: "https://www.google.com/search?q="},
	{Alias: "d", Name: "duckduckgo", Search: "https://duckduckgo.com/?q="},
	{Alias: "b", Name: "baidu", Search: "https://www.baidu.com/s?wd="},
	{Alias: "e", Name: "wikipedia", Search: "https://en.wikipedia.org/wiki/"},
	{Alias: "w", Name: "bing", Search: "https://www.bing.com/search?setmkt=en-us&setlang=en-us&q="},
	{Alias: "s", Name: "stackoverflow", Search: "https://stackoverflow.com/search?q="},
	{Alias: "h", Name: "github", Search: "https://github.com/search?q="},
	{Alias: "y", Name: "youtube", Search: "https://www.youtube.com/results?search_query="},
}

// StandardDefaults seeds a Memory with the factory bindings of a typical
// browser key-dispatch extension.
func StandardDefaults() []MemoryOption {
	return []MemoryOption{
		WithDefaults(keys.ModeNormal, standardNormal...),
		WithDefaults(keys.ModeVisual, standardVisual...),
		WithSearchAliases(standardSearchAliases...),
	}
}
