package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the textkit tool.
type Config struct {
	Corpus   CorpusConfig   `yaml:"corpus"`
	Clean    CleanConfig    `yaml:"clean"`
	Tokens   TokensConfig   `yaml:"tokens"`
	DFM      DFMConfig      `yaml:"dfm"`
	Dict     DictConfig     `yaml:"dict"`
	Classify ClassifyConfig `yaml:"classify"`
	Topics   TopicsConfig   `yaml:"topics"`
	Keyness  KeynessConfig  `yaml:"keyness"`
	KWIC     KWICConfig     `yaml:"kwic"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// CorpusConfig holds corpus loading configuration.
type CorpusConfig struct {
	TextField string   `yaml:"text_field"` // column holding document text in CSV/TSV sources
	IDField   string   `yaml:"id_field"`   // optional column used as document ID
	Includes  []string `yaml:"includes"`
	Excludes  []string `yaml:"excludes"`
}

// CleanConfig holds text cleaning configuration.
type CleanConfig struct {
	StripHTML bool       `yaml:"strip_html"`
	Patterns  []CleanSub `yaml:"patterns"`
}

// CleanSub is one regex substitution applied during cleaning.
type CleanSub struct {
	Pattern string `yaml:"pattern"`
	Replace string `yaml:"replace"`
}

// TokensConfig holds tokenization configuration.
type TokensConfig struct {
	Lowercase      bool     `yaml:"lowercase"`
	RemovePunct    bool     `yaml:"remove_punct"`
	RemoveNumbers  bool     `yaml:"remove_numbers"`
	RemoveStops    bool     `yaml:"remove_stops"`
	ExtraStopwords []string `yaml:"extra_stopwords"`
	Stemming       bool     `yaml:"stemming"`
	MinChars       int      `yaml:"min_chars"`
}

// DFMConfig holds document-feature matrix defaults.
type DFMConfig struct {
	MinTermFreq int     `yaml:"min_termfreq"`
	MinDocFreq  int     `yaml:"min_docfreq"`
	MaxDocProp  float64 `yaml:"max_docprop"`
	Weighting   string  `yaml:"weighting"` // "count", "prop", "tfidf"
}

// DictConfig holds dictionary lookup configuration.
type DictConfig struct {
	Path string `yaml:"path"`
}

// ClassifyConfig holds Naive Bayes classifier configuration.
type ClassifyConfig struct {
	LabelVar   string  `yaml:"label_var"`
	Smoothing  float64 `yaml:"smoothing"`
	Prior      string  `yaml:"prior"` // "docfreq" or "uniform"
	TrainRatio float64 `yaml:"train_ratio"`
	Seed       int64   `yaml:"seed"`
}

// TopicsConfig holds LDA topic model configuration.
type TopicsConfig struct {
	K          int     `yaml:"k"`
	Iterations int     `yaml:"iterations"`
	BurnIn     int     `yaml:"burn_in"`
	Alpha      float64 `yaml:"alpha"`
	Eta        float64 `yaml:"eta"`
	TopTerms   int     `yaml:"top_terms"`
	Seed       uint64  `yaml:"seed"`
}

// KeynessConfig holds keyness statistic configuration.
type KeynessConfig struct {
	Measure string `yaml:"measure"` // "chi2" or "lr"
	Var     string `yaml:"var"`     // docvar used to partition the corpus
	Target  string `yaml:"target"`  // docvar value marking the target partition
}

// KWICConfig holds concordance configuration.
type KWICConfig struct {
	Window int `yaml:"window"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Corpus: CorpusConfig{
			TextField: "text",
			Includes:  []string{"**/*.txt", "**/*.md"},
			Excludes:  []string{"**/.git/**", "**/.textkit/**"},
		},
		Clean: CleanConfig{
			StripHTML: true,
		},
		Tokens: TokensConfig{
			Lowercase:     true,
			RemovePunct:   true,
			RemoveNumbers: false,
			RemoveStops:   true,
			Stemming:      false,
			MinChars:      2,
		},
		DFM: DFMConfig{
			MinTermFreq: 1,
			MinDocFreq:  1,
			MaxDocProp:  1.0,
			Weighting:   "count",
		},
		Classify: ClassifyConfig{
			LabelVar:   "class",
			Smoothing:  1.0,
			Prior:      "docfreq",
			TrainRatio: 0.8,
			Seed:       42,
		},
		Topics: TopicsConfig{
			K:          10,
			Iterations: 50,
			BurnIn:     1,
			Alpha:      0.1,
			Eta:        0.01,
			TopTerms:   10,
			Seed:       42,
		},
		Keyness: KeynessConfig{
			Measure: "chi2",
		},
		KWIC: KWICConfig{
			Window: 5,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if no config file
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromDir loads configuration from a directory (looks for textkit.yaml).
func LoadFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, "textkit.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	path = filepath.Join(dir, ".textkit", "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	return DefaultConfig(), nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// CorpusDBPath returns the path to the corpus database.
func CorpusDBPath(dir string) string {
	return filepath.Join(dir, ".textkit", "corpus.db")
}

// EnsureDataDir ensures the .textkit directory exists.
func EnsureDataDir(dir string) error {
	return os.MkdirAll(filepath.Join(dir, ".textkit"), 0755)
}
