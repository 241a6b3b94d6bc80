// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package engine

import (
	"bytes"
	htmltemplate "html/template"
	"strings"
	"testing"
	"testing/fstest"
	texttemplate "text/template"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staranto/tplcache/internal/tplcache"
)

func TestText(t *testing.T) {
	fsys := fstest.MapFS{
		"hello.tpl": {Data: []byte("Hello,\n  {{ upper .Name }}!")},
	}
	funcs := texttemplate.FuncMap{"upper": strings.ToUpper}

	c, err := tplcache.New(Text(funcs)).LoadFS(fsys, tplcache.WithSlim(true))
	require.NoError(t, err)

	tmpl, err := c.Require("hello")
	require.NoError(t, err)
	assert.Equal(t, "hello.tpl", tmpl.Name())

	var buf bytes.Buffer
	require.NoError(t, tmpl.Execute(&buf, map[string]string{"Name": "world"}))
	assert.Equal(t, "Hello,WORLD!", buf.String())
}

func TestText_ParseError(t *testing.T) {
	fsys := fstest.MapFS{
		"good.tpl":   {Data: []byte("{{ .X }}")},
		"broken.tpl": {Data: []byte("{{ .X ")},
	}

	c := tplcache.New(Text(nil))
	_, err := c.LoadFS(fsys)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken.tpl")
	assert.False(t, c.Loaded())
}

func TestHTML(t *testing.T) {
	fsys := fstest.MapFS{
		"page.html": {Data: []byte("<p>{{ . }}</p>")},
	}

	c, err := tplcache.New(HTML(htmltemplate.FuncMap{})).LoadFS(fsys, tplcache.WithExtension(".html"))
	require.NoError(t, err)

	tmpl, err := c.Require("page")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, tmpl.Execute(&buf, "<b>"))
	assert.Equal(t, "<p>&lt;b&gt;</p>", buf.String())
}

func TestLines(t *testing.T) {
	compile := Lines()

	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{name: "empty", content: "", want: []string{}},
		{name: "single line", content: "a", want: []string{"a"}},
		{name: "trailing newline", content: "a\nb\n", want: []string{"a", "b"}},
		{name: "blank line kept", content: "a\n\nb", want: []string{"a", "", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := compile("x.tpl", tt.content)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
