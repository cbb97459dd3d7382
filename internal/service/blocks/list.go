package blocks

import (
	"encoding/json"
	"fmt"

	"github.com/m04kA/SMC-ProfileService/internal/domain"
)

// Direction направление перемещения блока на одну позицию
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)

// Все операции ниже не меняют входной слайс: результат - новый слайс,
// либо тот же самый, если операция ничего не делает.

// AddBlock добавляет блок в конец списка
func AddBlock(list []domain.Block, block domain.Block) ([]domain.Block, error) {
	if FindBlock(list, block.ID) >= 0 {
		return list, fmt.Errorf("%w: %s", ErrDuplicateBlockID, block.ID)
	}

	out := make([]domain.Block, 0, len(list)+1)
	out = append(out, list...)
	return append(out, block), nil
}

// RemoveBlock удаляет блок по id. Если блока нет - возвращает исходный список.
func RemoveBlock(list []domain.Block, id string) []domain.Block {
	idx := FindBlock(list, id)
	if idx < 0 {
		return list
	}

	out := make([]domain.Block, 0, len(list)-1)
	out = append(out, list[:idx]...)
	return append(out, list[idx+1:]...)
}

// MoveBlock меняет блок местами с соседним. За границами списка - no-op, без зацикливания.
func MoveBlock(list []domain.Block, index int, direction Direction) []domain.Block {
	var target int
	switch direction {
	case DirectionUp:
		target = index - 1
	case DirectionDown:
		target = index + 1
	default:
		return list
	}

	if !validIndex(list, index) || !validIndex(list, target) {
		return list
	}

	out := make([]domain.Block, len(list))
	copy(out, list)
	out[index], out[target] = out[target], out[index]
	return out
}

// Reorder переносит блок с позиции from на позицию to (drag-and-drop).
// to == len(list) означает "в конец"; to < 0 - перетаскивание без цели.
// При некорректных индексах список возвращается без изменений.
func Reorder(list []domain.Block, from, to int) []domain.Block {
	if !validIndex(list, from) || to < 0 || to > len(list) {
		return list
	}

	moved := list[from]
	out := make([]domain.Block, 0, len(list))
	out = append(out, list[:from]...)
	out = append(out, list[from+1:]...)

	if to >= len(out) {
		return append(out, moved)
	}

	out = append(out, domain.Block{})
	copy(out[to+1:], out[to:])
	out[to] = moved
	return out
}

// UpdateBlock сливает patch с полями блока, сохраняя остальные поля.
// Ключи id и type игнорируются. Если блока нет - возвращает исходный список.
func UpdateBlock(list []domain.Block, id string, patch domain.Patch) ([]domain.Block, error) {
	idx := FindBlock(list, id)
	if idx < 0 {
		return list, nil
	}

	updated, err := ApplyPatch(list[idx], patch)
	if err != nil {
		return list, err
	}

	out := make([]domain.Block, len(list))
	copy(out, list)
	out[idx] = updated
	return out, nil
}

// ApplyPatch возвращает копию блока с применённым patch
func ApplyPatch(block domain.Block, patch domain.Patch) (domain.Block, error) {
	fields := map[string]json.RawMessage{}
	if block.Content != nil {
		var err error
		fields, err = domain.ContentFields(block.Content)
		if err != nil {
			return block, fmt.Errorf("%w: block %s: %v", ErrInvalidPatch, block.ID, err)
		}
	}

	for key, value := range patch.Without("id", "type") {
		raw, err := json.Marshal(value)
		if err != nil {
			return block, fmt.Errorf("%w: field %q: %v", ErrInvalidPatch, key, err)
		}
		fields[key] = raw
	}

	data, err := json.Marshal(fields)
	if err != nil {
		return block, fmt.Errorf("%w: block %s: %v", ErrInvalidPatch, block.ID, err)
	}

	content, err := domain.DecodeBlockContent(block.Type, data)
	if err != nil {
		return block, fmt.Errorf("%w: block %s: %v", ErrInvalidPatch, block.ID, err)
	}

	return domain.Block{ID: block.ID, Type: block.Type, Content: content}, nil
}

// FindBlock возвращает индекс блока с указанным id или -1
func FindBlock(list []domain.Block, id string) int {
	for i := range list {
		if list[i].ID == id {
			return i
		}
	}
	return -1
}

func validIndex(list []domain.Block, i int) bool {
	return i >= 0 && i < len(list)
}
