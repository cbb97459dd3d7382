package blocks

import "errors"

var (
	// ErrUnsupportedBlockType возвращается при попытке создать блок неизвестного типа
	ErrUnsupportedBlockType = errors.New("blocks: unsupported block type")

	// ErrDuplicateBlockID возвращается при добавлении блока с уже существующим id
	ErrDuplicateBlockID = errors.New("blocks: duplicate block id")

	// ErrInvalidPatch возвращается, когда значения патча не подходят к полям блока
	ErrInvalidPatch = errors.New("blocks: invalid patch")
)
