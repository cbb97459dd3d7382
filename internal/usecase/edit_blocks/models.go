package edit_blocks

import "github.com/m04kA/SMC-ProfileService/internal/domain"

// Названия операций для метрик и логов
const (
	OperationAdd            = "add"
	OperationUpdate         = "update"
	OperationRemove         = "remove"
	OperationMove           = "move"
	OperationReorder        = "reorder"
	OperationUpdateSettings = "update_settings"
)

// Response состояние страницы после операции
type Response struct {
	BusinessID string
	Page       domain.Page
	// Block добавленный или изменённый блок (для add и update)
	Block *domain.Block
}
