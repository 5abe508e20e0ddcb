package main

import (
	"bytes"
	"errors"
	"io"

	json "github.com/goccy/go-json"

	skema "github.com/reoring/skema"
	"github.com/reoring/skema/i18n"
)

// dupFrame tracks one open container while scanning tokens.
type dupFrame struct {
	object       bool
	keys         map[string]struct{}
	expectingKey bool
	key          string // last key read in an object
	idx          int    // next element index in an array
	path         skema.PathRef
}

// duplicateKeys scans a JSON document for objects that repeat a key. Decoding
// into a map keeps only the last value, so such input would be validated
// partially.
func duplicateKeys(data []byte) (skema.Issues, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var iss skema.Issues
	var stack []*dupFrame

	valuePath := func() skema.PathRef {
		if len(stack) == 0 {
			return skema.Root()
		}
		top := stack[len(stack)-1]
		if top.object {
			return top.path.Field(top.key)
		}
		return top.path.Index(top.idx)
	}
	// done marks the current value of the enclosing container as complete.
	done := func() {
		if len(stack) == 0 {
			return
		}
		top := stack[len(stack)-1]
		if top.object {
			top.expectingKey = true
		} else {
			top.idx++
		}
	}

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		switch v := tok.(type) {
		case json.Delim:
			switch v {
			case '{':
				stack = append(stack, &dupFrame{object: true, keys: map[string]struct{}{}, expectingKey: true, path: valuePath()})
			case '[':
				stack = append(stack, &dupFrame{path: valuePath()})
			case '}', ']':
				if len(stack) > 0 {
					stack = stack[:len(stack)-1]
				}
				done()
			}
		case string:
			if len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.object && top.expectingKey {
					if _, ok := top.keys[v]; ok {
						it := top.path.Field(v).Issue(skema.CodeDuplicateKey, i18n.T(skema.CodeDuplicateKey, map[string]string{"key": v}), "key", v)
						iss = skema.AppendIssues(iss, it)
					}
					top.keys[v] = struct{}{}
					top.key = v
					top.expectingKey = false
					continue
				}
			}
			done()
		default:
			done()
		}
	}
	return iss, nil
}
