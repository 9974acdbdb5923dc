package dbg

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/osuushi/intersect/scene"
)

// Readable stand-in names for values that have none, like unnamed shapes in a
// scene. Equal values get the same name for the life of the process. Names are
// handed out in order of demand and never forgotten.

var (
	memoLock sync.Mutex
	memo     = make(map[string]string)
)

func init() {
	// The same name won't refer to the same value between runs, and the names
	// shouldn't suggest otherwise.
	petname.NonDeterministicMode()
}

// Name returns a memoised adjective-name pair for obj, or "Ø" for nil.
func Name(obj interface{}) string {
	if isNil(obj) {
		return "Ø"
	}

	// Shapes hold slices, so they can't be map keys themselves
	key := fmt.Sprintf("%T%#v", obj, obj)

	memoLock.Lock()
	defer memoLock.Unlock()
	if r, ok := memo[key]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[key] = r
	return r
}

// Label is the shape's name if it has one, and a readable name otherwise.
func Label(n scene.Named) string {
	if n.Name != "" {
		return n.Name
	}
	return Name(n.Shape)
}

func isNil(obj interface{}) bool {
	if obj == nil {
		return true
	}
	switch v := reflect.ValueOf(obj); v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}
