package config

var DefaultConfig Config
var DefaultTheme Theme

func init() {
	DefaultTheme = Theme{
		Colors: ConfigColors{
			Heading:   255,
			Letters:   230,
			Hint:      250,
			Brick:     220,
			BrickEdge: 136,
			Highlight: 214,
		},
		Brick:    '▄',
		WashFrom: "#100040",
		WashTo:   "#700040",
	}

	DefaultConfig = Config{
		Entry: EntryConfig{
			FrameMillis:    20,
			DebounceMillis: 250,
			HoldMillis:     120,
			DeadZone:       0.1,
		},
		Leaderboard: LeaderboardConfig{
			Size: 10,
		},
		Sound: SoundConfig{
			Enabled: true,
			Volume:  0.5,
		},
		Log: LogConfig{
			Level: "info",
		},
		Theme: DefaultTheme,
	}
}
