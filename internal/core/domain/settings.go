package domain

const (
	// PlatformWechat targets the WeChat mini-program runtime.
	PlatformWechat = "wechat"
	// PlatformAlipay targets the Alipay mini-program runtime.
	PlatformAlipay = "alipay"
)

// Settings are the project-level knobs read from the optional settings file.
// Entry paths are relative to the source root.
type Settings struct {
	Platform   string
	Entry      []EntryPoint
	Filename   string
	PublicPath string
	// Workers overrides the worker count; zero means host CPU count minus one.
	Workers int
	// Warmup asks the engine to pre-spawn workers for the parallelised loaders.
	Warmup bool
	// Steps requests extra augmentation steps per asset class.
	Steps map[AssetClass][]StepKind
}

// DefaultSettings returns the settings used when no settings file exists.
func DefaultSettings() Settings {
	return Settings{
		Platform:   PlatformWechat,
		Entry:      []EntryPoint{{Name: "app", Paths: []string{"app.ts"}}},
		Filename:   "[name].js",
		PublicPath: "/",
		Warmup:     true,
		Steps:      map[AssetClass][]StepKind{},
	}
}
