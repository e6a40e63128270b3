package configs

// Baseline controls how the stored baseline evolves between cycles. In
// "replace" mode the latest observation overwrites the baseline; in "ema"
// mode it is blended with the previous value using EMAAlpha.
type Baseline struct {
	Mode     string  `env:"MODE" envDefault:"replace" yaml:"mode"`
	EMAAlpha float64 `env:"EMA_ALPHA" envDefault:"0.3" yaml:"ema_alpha"`
}
