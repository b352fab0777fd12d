package util

import (
	"github.com/stretchr/testify/assert"
	"os"
	"testing"
)

func TestSetEnv(t *testing.T) {
	a := assert.New(t)
	_, found := os.LookupEnv("test_foo")

	a.False(found)
	unset1 := SetEnv("test_foo", "bar")
	a.Equal("bar", os.Getenv("test_foo"))

	unset2 := SetEnv("test_foo", "bar2")
	a.Equal("bar2", os.Getenv("test_foo"))
	unset2()
	a.Equal("bar", os.Getenv("test_foo"))
	unset1()

	_, found = os.LookupEnv("test_foo")
	a.False(found)
}

func TestUnsetEnv(t *testing.T) {
	a := assert.New(t)

	unset1 := SetEnv("test_foo", "bar")
	restore := UnsetEnv("test_foo")
	_, found := os.LookupEnv("test_foo")
	a.False(found)

	restore()
	a.Equal("bar", os.Getenv("test_foo"))
	unset1()
}

func TestGetenv(t *testing.T) {
	a := assert.New(t)

	a.Equal("default", Getenv("test_foo", "default"))
	unset := SetEnv("test_foo", "bar")
	defer unset()
	a.Equal("bar", Getenv("test_foo", "default"))
}
