package memory_test

import (
	"testing"

	"github.com/m-mizutani/docdive/pkg/repository/memory"
	"github.com/m-mizutani/docdive/pkg/repository/testhelper"
)

func TestMemoryCacheStore(t *testing.T) {
	store := memory.New()
	testhelper.TestAll(t, store)
}
