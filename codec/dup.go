package codec

import (
	"bytes"

	"github.com/goccy/go-json"

	"github.com/reoring/fieldkit"
)

type frame struct {
	object       bool
	keys         map[string]struct{}
	expectingKey bool
	key          string // current key (objects)
	index        int    // next element index (arrays)
	path         fieldkit.PathRef
}

// child returns the path of the value about to be read in f.
func (f *frame) child() fieldkit.PathRef {
	if f.object {
		return f.path.Field(f.key)
	}
	return f.path.Index(f.index)
}

// valueDone advances f after one complete value.
func (f *frame) valueDone() {
	if f.object {
		f.expectingKey = true
		return
	}
	f.index++
}

// DuplicateKeys reports every duplicated object key in a JSON document, at
// the JSON Pointer of the duplicate. Syntax errors stop the scan silently;
// the decoder reports them.
func DuplicateKeys(data []byte) fieldkit.Issues {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var (
		iss   fieldkit.Issues
		stack []*frame
	)
	top := func() *frame {
		if len(stack) == 0 {
			return nil
		}
		return stack[len(stack)-1]
	}
	for {
		tok, err := dec.Token()
		if err != nil {
			return iss
		}
		cur := top()
		switch v := tok.(type) {
		case json.Delim:
			switch v {
			case '{', '[':
				p := fieldkit.Root()
				if cur != nil {
					p = cur.child()
				}
				stack = append(stack, &frame{object: v == '{', keys: map[string]struct{}{}, expectingKey: true, path: p})
			case '}', ']':
				stack = stack[:len(stack)-1]
				if parent := top(); parent != nil {
					parent.valueDone()
				}
			}
		case string:
			if cur != nil && cur.object && cur.expectingKey {
				if _, dup := cur.keys[v]; dup {
					p := cur.path.Field(v)
					iss = append(iss, p.Issue(fieldkit.CodeDuplicateKey, "key '"+v+"' duplicated", "key", v))
				}
				cur.keys[v] = struct{}{}
				cur.key = v
				cur.expectingKey = false
				continue
			}
			if cur != nil {
				cur.valueDone()
			}
		default:
			if cur != nil {
				cur.valueDone()
			}
		}
	}
}
