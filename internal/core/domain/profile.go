package domain

// BuildProfile is the resolved set of environment-derived toggles for one build.
//
// MinifyEnabled is carried as requested; the chain builder only honours it when
// IsDevelopment is false.
type BuildProfile struct {
	IsDevelopment             bool
	LintEnabled               bool
	MinifyEnabled             bool
	ConfigName                string
	SpeedOptimizationsEnabled bool
}

// NodeEnv returns the NODE_ENV value the bundle is compiled for.
func (p BuildProfile) NodeEnv() string {
	if p.IsDevelopment {
		return "development"
	}
	return "production"
}

// Minifies reports whether minification is effective for this profile.
func (p BuildProfile) Minifies() bool {
	return p.MinifyEnabled && !p.IsDevelopment
}

// SpeedOptimized reports whether cache and worker steps are effective for this profile.
func (p BuildProfile) SpeedOptimized() bool {
	return p.SpeedOptimizationsEnabled && p.IsDevelopment
}
