package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const goSample = `package main

// adder adds numbers.
func add(a, b int) int {
	return a + b
}

type pair struct {
	a, b int
}

func (p pair) sum() int {
	return add(p.a, p.b)
}
`

func TestComputeGo(t *testing.T) {
	m := Lookup("go").Compute(goSample)

	assert.Equal(t, 2, m.FunctionCount)
	assert.Equal(t, 1, m.ClassCount)
	assert.Equal(t, 10, m.CodeSize)

	// 1 comment line of 14 total
	assert.Equal(t, 7.14, m.CommentRatio)

	// 2 functions and 10 code lines
	assert.Equal(t, 5.0, m.Complexity)
}

func TestComputePython(t *testing.T) {
	code := "# top comment\ndef f(x):\n    return x\n\nclass C:\n    pass\n"
	m := Lookup("python").Compute(code)

	assert.Equal(t, 1, m.FunctionCount)
	assert.Equal(t, 1, m.ClassCount)
	assert.Equal(t, 4, m.CodeSize)
	assert.Equal(t, 16.67, m.CommentRatio)
}

func TestComputeJavaScript(t *testing.T) {
	code := "// util\nfunction f(x) { return x; }\nconst g = (x) => x;\nclass C {}\n"
	m := Lookup("javascript").Compute(code)

	assert.Equal(t, 2, m.FunctionCount)
	assert.Equal(t, 1, m.ClassCount)
}

func TestComputeEmpty(t *testing.T) {
	m := Lookup("go").Compute("")

	assert.Zero(t, m.CodeSize)
	assert.Zero(t, m.FunctionCount)
	assert.Zero(t, m.CommentRatio)
}

func TestLookupFallsBackToGo(t *testing.T) {
	assert.Equal(t, "go", Lookup("cobol").Name)
	assert.Equal(t, "python", Lookup("Python").Name)
}
