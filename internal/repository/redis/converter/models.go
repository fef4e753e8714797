package converter

// ComponentRedisModel — JSON-представление записи каталога в кэше.
// Кэшируется только спецификация, рассчитанные цены в кэш не попадают.
type ComponentRedisModel struct {
	ID         int64          `json:"id"`
	Category   string         `json:"category"`
	Name       string         `json:"name"`
	Attributes map[string]any `json:"attributes"`
	BasePrice  int64          `json:"base_price"`
}
