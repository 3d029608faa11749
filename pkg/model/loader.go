package model

import (
	"os"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

// Load resolves a model by name: "<name>.json" in the working path wins,
// else the explicit file path fallback. Load failure is fatal to the
// caller; everything below the root parses best-effort.
func Load(name, filePath string) (*Model, error) {
	path := name + ".json"
	if _, err := os.Stat(path); err != nil {
		if filePath == "" {
			return nil, errors.Errorf("model %q not found in working path and no model file given", name)
		}
		path = filePath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load model %q from %s", name, path)
	}
	if !gjson.ValidBytes(data) {
		return nil, errors.Errorf("failed to load model %q: %s is not valid JSON", name, path)
	}

	root := gjson.ParseBytes(data)
	m := &Model{Name: name}
	if n := root.Get("name").String(); n != "" {
		m.Name = n
	}
	m.Root = parseArchitecture(root.Get("architecture"))
	if m.Root == nil {
		return nil, errors.Errorf("model %q has no architecture", m.Name)
	}
	return m, nil
}

func parseArchitecture(res gjson.Result) *Architecture {
	if !res.IsObject() {
		return nil
	}
	arch := &Architecture{}
	res.Get("components").ForEach(func(_, comp gjson.Result) bool {
		if c := parseComponent(comp); c != nil {
			arch.Components = append(arch.Components, c)
		}
		return true
	})
	return arch
}

func parseComponent(res gjson.Result) *Component {
	if !res.IsObject() {
		return nil
	}
	c := &Component{Name: res.Get("name").String()}
	res.Get("properties").ForEach(func(k, v gjson.Result) bool {
		c.Props.Set(k.String(), valueOf(v))
		return true
	})
	// A malformed or absent sub-architecture makes this a leaf.
	c.Sub = parseArchitecture(res.Get("subArchitecture"))
	return c
}

func valueOf(res gjson.Result) Value {
	switch res.Type {
	case gjson.Number:
		return Number(res.Num)
	case gjson.String:
		return String(res.Str)
	case gjson.True, gjson.False:
		return Boolean(res.Bool())
	default:
		return Value{}
	}
}
