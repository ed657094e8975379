package config

// Config holds all game configuration.
type Config struct {
	// Players are seated, and take turns, in this order.
	Players         []string `mapstructure:"players" validate:"required,min=1,unique,dive,required"`
	HandSize        int      `mapstructure:"hand_size" validate:"gte=1"`
	ShufflePasses   int      `mapstructure:"shuffle_passes" validate:"gte=0"`
	FinishThreshold int      `mapstructure:"finish_threshold" validate:"gte=0"`
	ShuffleSource   string   `mapstructure:"shuffle_source" validate:"oneof=math crypto"`
	Seed            int64    `mapstructure:"seed"` // 0 seeds from the clock
	ScoringRule     string   `mapstructure:"scoring_rule" validate:"oneof=rank_sum card_count"`
	LogLevel        string   `mapstructure:"log_level" validate:"oneof=debug info warn error"`
	Interactive     bool     `mapstructure:"interactive"`
}
