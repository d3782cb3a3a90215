package analyzer

// DefaultLevels returns the levels recognized out of the box.
func DefaultLevels() []string {
	return []string{"INFO", "WARNING", "ERROR"}
}

// Default substrings identifying startup and shutdown entries.
const (
	DefaultStartupMarker  = "System startup"
	DefaultShutdownMarker = "System shutdown"
)

// Analyzer runs reports over a collection of entries.
// It holds no per-run state; every report uses local accumulators.
type Analyzer struct {
	levels         []string
	startupMarker  string
	shutdownMarker string
}

// AnalyzerOption configures analyzer behavior.
type AnalyzerOption func(*Analyzer)

// WithLevels sets the recognized levels. Empty input keeps the defaults.
func WithLevels(levels []string) AnalyzerOption {
	return func(a *Analyzer) {
		if len(levels) > 0 {
			a.levels = append([]string(nil), levels...)
		}
	}
}

// WithMarkers sets the substrings that identify startup and shutdown entries.
// Empty values keep the defaults.
func WithMarkers(startup, shutdown string) AnalyzerOption {
	return func(a *Analyzer) {
		if startup != "" {
			a.startupMarker = startup
		}
		if shutdown != "" {
			a.shutdownMarker = shutdown
		}
	}
}

// NewAnalyzer creates a new analyzer.
func NewAnalyzer(opts ...AnalyzerOption) *Analyzer {
	a := &Analyzer{
		levels:         DefaultLevels(),
		startupMarker:  DefaultStartupMarker,
		shutdownMarker: DefaultShutdownMarker,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Levels returns the recognized levels.
func (a *Analyzer) Levels() []string {
	return append([]string(nil), a.levels...)
}

func (a *Analyzer) isLevel(level string) bool {
	for _, l := range a.levels {
		if l == level {
			return true
		}
	}
	return false
}
