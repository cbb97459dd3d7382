package domain

import (
	"encoding/json"
	"sort"
)

// Patch частичное обновление полей блока в JSON-форме: ключ присутствует - поле меняется.
type Patch map[string]interface{}

// Has checks if the key is present in the patch (even with an empty value)
func (p Patch) Has(key string) bool {
	_, ok := p[key]
	return ok
}

// Keys returns patch keys in stable order
func (p Patch) Keys() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Decode раскладывает значения патча в структуру через JSON
func (p Patch) Decode(dst interface{}) error {
	data, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dst)
}

// Without возвращает копию патча без указанных ключей
func (p Patch) Without(keys ...string) Patch {
	out := make(Patch, len(p))
	for k, v := range p {
		out[k] = v
	}
	for _, k := range keys {
		delete(out, k)
	}
	return out
}
