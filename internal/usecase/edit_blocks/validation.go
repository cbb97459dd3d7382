package edit_blocks

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-ProfileService/internal/domain"
	"github.com/m04kA/SMC-ProfileService/internal/service/blocks"
)

const (
	maxHeadlineLength    = 200
	maxDescriptionLength = 1000
)

func validatePageType(pageType domain.PageType) error {
	if !pageType.IsValid() {
		return fmt.Errorf("%w: unknown page type %q", ErrValidation, pageType)
	}
	return nil
}

func validateBlockType(blockType domain.BlockType) error {
	if !blocks.IsSupported(blockType) {
		return fmt.Errorf("%w: unsupported block type %q", ErrValidation, blockType)
	}
	return nil
}

func validateDirection(direction blocks.Direction) error {
	if direction != blocks.DirectionUp && direction != blocks.DirectionDown {
		return fmt.Errorf("%w: direction must be %q or %q", ErrValidation, blocks.DirectionUp, blocks.DirectionDown)
	}
	return nil
}

func validateSettings(headline, description string) error {
	if utf8.RuneCountInString(strings.TrimSpace(headline)) > maxHeadlineLength {
		return fmt.Errorf("%w: headline is longer than %d characters", ErrValidation, maxHeadlineLength)
	}
	if utf8.RuneCountInString(description) > maxDescriptionLength {
		return fmt.Errorf("%w: description is longer than %d characters", ErrValidation, maxDescriptionLength)
	}
	return nil
}
