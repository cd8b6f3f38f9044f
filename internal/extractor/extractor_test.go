package extractor

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/goextract/pkg/types"
)

// writeFixture writes Go source into a temp dir and returns its path.
func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestNew(t *testing.T) {
	e := New()
	assert.NotNil(t, e)
	assert.NotNil(t, e.fset)
}

func TestExtractFile_Functions(t *testing.T) {
	path := writeFixture(t, "main.go", `package main

func Hello(name string) string {
	return "Hello, " + name
}

func (s *Server) Start(ctx context.Context) error {
	return nil
}
`)

	e := New()
	result, err := e.ExtractFile(path)
	require.NoError(t, err)
	require.Len(t, result.Functions, 2)

	hello := result.Functions[0]
	assert.Equal(t, "Hello", hello.Name)
	assert.Equal(t, path, hello.File)
	assert.True(t, hello.Exported)
	assert.Equal(t, []string{"name"}, hello.Params)
	assert.Empty(t, hello.Receiver)
	assert.GreaterOrEqual(t, hello.LOC, 3)
	assert.NotEmpty(t, hello.Body)

	start := result.Functions[1]
	assert.Equal(t, "Start", start.Name)
	assert.Equal(t, "Server", start.Receiver)
	assert.Equal(t, []string{"ctx"}, start.Params)
}

func TestExtractFile_LineNumbersAndLOC(t *testing.T) {
	path := writeFixture(t, "lines.go", `package main

// Comment
func First() {
}

func Second() {
	x := 1
	_ = x
}
`)

	e := New()
	result, err := e.ExtractFile(path)
	require.NoError(t, err)
	require.Len(t, result.Functions, 2)

	// The doc comment is not part of the declaration span.
	assert.Equal(t, 4, result.Functions[0].Line)
	assert.Equal(t, 5, result.Functions[0].EndLine)
	assert.Equal(t, 2, result.Functions[0].LOC)

	assert.Equal(t, 7, result.Functions[1].Line)
	assert.Equal(t, 10, result.Functions[1].EndLine)
	assert.Equal(t, 4, result.Functions[1].LOC)
}

func TestExtractFile_BodyIsVerbatim(t *testing.T) {
	path := writeFixture(t, "body.go", `package main

func Compute() int {
	// keep this comment
	total := 1 +
		2
	return total
}
`)

	e := New()
	result, err := e.ExtractFile(path)
	require.NoError(t, err)
	require.Len(t, result.Functions, 1)

	body := result.Functions[0].Body
	assert.True(t, strings.HasPrefix(body, "{"))
	assert.True(t, strings.HasSuffix(body, "}"))
	assert.Contains(t, body, "// keep this comment")
	assert.Contains(t, body, "1 +\n\t\t2")
}

func TestExtractFile_MultiNameParamGroup(t *testing.T) {
	path := writeFixture(t, "params.go", `package main

func Process(a int, b string, c bool) (string, error) {
	return "", nil
}

func Sum(a, b int) int {
	return a + b
}
`)

	e := New()
	result, err := e.ExtractFile(path)
	require.NoError(t, err)
	require.Len(t, result.Functions, 2)

	assert.Equal(t, []string{"a", "b", "c"}, result.Functions[0].Params)
	assert.Equal(t, []string{"a", "b"}, result.Functions[1].Params)
}

func TestExtractFile_Structs(t *testing.T) {
	path := writeFixture(t, "types.go", `package main

type User struct {
	Name  string
	Email string
}

type Admin struct {
	User
	Role string
}
`)

	e := New()
	result, err := e.ExtractFile(path)
	require.NoError(t, err)
	require.Len(t, result.Structs, 2)

	user := result.Structs[0]
	assert.Equal(t, "User", user.Name)
	assert.True(t, user.Exported)
	assert.Equal(t, []string{"Name", "Email"}, user.Fields)
	assert.Empty(t, user.Embedded)
	assert.Empty(t, user.Methods)

	admin := result.Structs[1]
	assert.Equal(t, "Admin", admin.Name)
	assert.Equal(t, []string{"Role"}, admin.Fields)
	assert.Equal(t, []string{"User"}, admin.Embedded)
	assert.NotContains(t, admin.Fields, "User")
}

func TestExtractFile_EmbeddedForms(t *testing.T) {
	path := writeFixture(t, "embed.go", `package main

type Mixed struct {
	*Base
	io.Reader
	Named string
}
`)

	e := New()
	result, err := e.ExtractFile(path)
	require.NoError(t, err)
	require.Len(t, result.Structs, 1)

	mixed := result.Structs[0]
	assert.Equal(t, []string{"*Base", "io.Reader"}, mixed.Embedded)
	assert.Equal(t, []string{"Named"}, mixed.Fields)
}

func TestExtractFile_Interfaces(t *testing.T) {
	path := writeFixture(t, "iface.go", `package main

type Reader interface {
	Read(p []byte) (n int, err error)
	Close() error
}
`)

	e := New()
	result, err := e.ExtractFile(path)
	require.NoError(t, err)
	require.Len(t, result.Interfaces, 1)

	reader := result.Interfaces[0]
	assert.Equal(t, "Reader", reader.Name)
	assert.Equal(t, []string{"Read", "Close"}, reader.Methods)
}

func TestExtractFile_EmbeddedInterfaceNotExpanded(t *testing.T) {
	path := writeFixture(t, "iface.go", `package main

type ReadCloser interface {
	io.Reader
	Close() error
}
`)

	e := New()
	result, err := e.ExtractFile(path)
	require.NoError(t, err)
	require.Len(t, result.Interfaces, 1)

	// The embedded io.Reader entry carries no method name and is skipped.
	assert.Equal(t, []string{"Close"}, result.Interfaces[0].Methods)
}

func TestExtractFile_MethodsNotAttachedPerFile(t *testing.T) {
	path := writeFixture(t, "server.go", `package main

type Server struct {
	Host string
}

func (s *Server) Start() error {
	return nil
}
`)

	e := New()
	result, err := e.ExtractFile(path)
	require.NoError(t, err)
	require.Len(t, result.Structs, 1)
	require.Len(t, result.Functions, 1)

	// Attachment is the aggregator's job; extraction leaves Methods empty.
	assert.Empty(t, result.Structs[0].Methods)
	assert.Equal(t, "Server", result.Functions[0].Receiver)
}

func TestExtractFile_UnexportedNames(t *testing.T) {
	path := writeFixture(t, "private.go", `package main

func helper() {}

type config struct {
	value string
}
`)

	e := New()
	result, err := e.ExtractFile(path)
	require.NoError(t, err)
	require.Len(t, result.Functions, 1)
	require.Len(t, result.Structs, 1)

	assert.False(t, result.Functions[0].Exported)
	assert.False(t, result.Structs[0].Exported)
}

func TestExtractFile_GenericReceiver(t *testing.T) {
	path := writeFixture(t, "generic.go", `package main

type Cache[K comparable, V any] struct {
	items map[K]V
}

func (c *Cache[K, V]) Get(key K) (V, bool) {
	v, ok := c.items[key]
	return v, ok
}
`)

	e := New()
	result, err := e.ExtractFile(path)
	require.NoError(t, err)
	require.Len(t, result.Functions, 1)

	assert.Equal(t, "Cache", result.Functions[0].Receiver)
}

func TestExtractFile_NestedTypeDeclaration(t *testing.T) {
	path := writeFixture(t, "nested.go", `package main

func build() {
	type local struct {
		n int
	}
	_ = local{}
}
`)

	e := New()
	result, err := e.ExtractFile(path)
	require.NoError(t, err)

	// The walk covers the full tree, so type declarations inside function
	// bodies are extracted too.
	require.Len(t, result.Structs, 1)
	assert.Equal(t, "local", result.Structs[0].Name)
	assert.Equal(t, []string{"n"}, result.Structs[0].Fields)
}

func TestExtractFile_EmptyFile(t *testing.T) {
	path := writeFixture(t, "empty.go", "package main\n")

	e := New()
	result, err := e.ExtractFile(path)
	require.NoError(t, err)

	assert.NotNil(t, result.Functions)
	assert.NotNil(t, result.Structs)
	assert.NotNil(t, result.Interfaces)
	assert.Empty(t, result.Functions)
	assert.Empty(t, result.Structs)
	assert.Empty(t, result.Interfaces)
}

func TestExtractFile_NotFound(t *testing.T) {
	e := New()
	_, err := e.ExtractFile(filepath.Join(t.TempDir(), "missing.go"))
	require.Error(t, err)

	var xerr *types.ExtractError
	require.ErrorAs(t, err, &xerr)
	assert.Equal(t, types.StageRead, xerr.Stage)
}

func TestExtractFile_SyntaxError(t *testing.T) {
	path := writeFixture(t, "invalid.go", `package main

func incomplete( {
}
`)

	e := New()
	_, err := e.ExtractFile(path)
	require.Error(t, err)

	var xerr *types.ExtractError
	require.ErrorAs(t, err, &xerr)
	assert.Equal(t, types.StageParse, xerr.Stage)
	assert.Equal(t, path, xerr.File)
	assert.Equal(t, 3, xerr.Line)
	assert.Greater(t, xerr.Column, 0)
}

func TestExtractSource_OtherDeclarationsIgnored(t *testing.T) {
	src := []byte(`package main

import "fmt"

const answer = 42

var greeting = "hi"

type Alias = fmt.Stringer

func Only() {}
`)

	e := New()
	result, err := e.ExtractSource("mem.go", src)
	require.NoError(t, err)

	require.Len(t, result.Functions, 1)
	assert.Empty(t, result.Structs)
	assert.Empty(t, result.Interfaces)
}
