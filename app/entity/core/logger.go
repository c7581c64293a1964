package core

//go:generate mockgen -source=logger.go -destination=mock_logger.go -package=core

// Logger はログ出力のインターフェース
// messageType には "system", "event", "debug", "warning", "error" を使う
type Logger interface {
	Log(messageType string, message string)
	Flush()
}
