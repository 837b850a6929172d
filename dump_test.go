package glog

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dumpedFields(v interface{}) map[string]interface{} {
	return Dump(v).Fields()
}

func TestDump_Struct(t *testing.T) {
	type user struct {
		Name string
		Age  int
	}

	fields := dumpedFields(user{Name: "alice", Age: 42})
	assert.Equal(t, map[string]interface{}{
		"Name": "alice",
		"Age":  42,
	}, fields)
}

func TestDump_NestedStruct(t *testing.T) {
	type inner struct {
		Value string
	}
	type outer struct {
		ID    int
		Inner inner
	}

	fields := dumpedFields(outer{ID: 7, Inner: inner{Value: "deep"}})
	assert.Equal(t, map[string]interface{}{
		"ID":          7,
		"Inner.Value": "deep",
	}, fields)
}

func TestDump_Map(t *testing.T) {
	fields := dumpedFields(map[string]int{"a": 1, "b": 2})
	assert.Equal(t, map[string]interface{}{
		"[a]": 1,
		"[b]": 2,
	}, fields)
}

func TestDump_Slice(t *testing.T) {
	fields := dumpedFields([]string{"x", "y"})
	assert.Equal(t, map[string]interface{}{
		"[0]": "x",
		"[1]": "y",
	}, fields)
}

func TestDump_SliceTruncation(t *testing.T) {
	big := make([]int, 25)
	for i := range big {
		big[i] = i
	}

	fields := dumpedFields(struct{ Items []int }{Items: big})
	assert.Len(t, fields, maxDumpElements+1)
	assert.Equal(t, 0, fields["Items[0]"])
	assert.Equal(t, 9, fields["Items[9]"])
	assert.Equal(t, fmt.Sprintf("... (%d more elements)", 15), fields["Items"])
}

func TestDump_BasicValueAtRoot(t *testing.T) {
	assert.Equal(t, map[string]interface{}{"value": 42}, dumpedFields(42))
	assert.Equal(t, map[string]interface{}{"value": "plain"}, dumpedFields("plain"))
	assert.Equal(t, map[string]interface{}{"value": "<nil>"}, dumpedFields(nil))
}

func TestDump_PointerDeref(t *testing.T) {
	type user struct {
		Name string
	}

	fields := dumpedFields(&user{Name: "bob"})
	assert.Equal(t, map[string]interface{}{"Name": "bob"}, fields)

	var missing *user
	assert.Equal(t, map[string]interface{}{"value": "<nil>"}, dumpedFields(missing))
}

func TestDump_CircularReference(t *testing.T) {
	type node struct {
		Name string
		Next *node
	}

	a := &node{Name: "a"}
	b := &node{Name: "b", Next: a}
	a.Next = b

	fields := dumpedFields(a)
	assert.Equal(t, "a", fields["Name"])
	assert.Equal(t, "b", fields["Next.Name"])
	assert.Equal(t, "<circular reference>", fields["Next.Next"])
}

func TestDump_SkipsUnexportedFields(t *testing.T) {
	type account struct {
		Name   string
		secret string
	}

	fields := dumpedFields(account{Name: "visible", secret: "hidden"})
	assert.Equal(t, map[string]interface{}{"Name": "visible"}, fields)
}

func TestDump_DepthCap(t *testing.T) {
	deep := map[string]interface{}{"leaf": 1}
	for i := 0; i < maxDumpDepth+2; i++ {
		deep = map[string]interface{}{"next": deep}
	}

	capped := false
	for _, v := range dumpedFields(deep) {
		if v == "<max depth reached>" {
			capped = true
		}
	}
	assert.True(t, capped, "expected a depth marker in the dumped fields")
}

func TestDump_EmitsThroughBackend(t *testing.T) {
	rec := withRecordingBackend(t)

	type state struct {
		Phase string
		Retry int
	}
	Dump(state{Phase: "draining", Retry: 3}).Debug("dumped state")

	emits := rec.emitted()
	require.Len(t, emits, 1)
	assert.Equal(t, LevelDebug, emits[0].level)
	assert.Equal(t, map[string]interface{}{
		"Phase": "draining",
		"Retry": 3,
		"msg":   "dumped state",
	}, emits[0].fields)
}
