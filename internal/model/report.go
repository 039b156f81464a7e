package model

// Estimate summarizes what crushing a single source would produce.
type Estimate struct {
	Source   Path
	Targets  int
	Variants int
}

// ManifestEntry describes one written variant file.
type ManifestEntry struct {
	Index       int          `yaml:"index"`
	File        string       `yaml:"file"`
	Source      Path         `yaml:"source"`
	SourceHash  string       `yaml:"source_hash,omitempty"`
	Strategy    StrategyName `yaml:"strategy"`
	Start       int          `yaml:"start_byte"`
	End         int          `yaml:"end_byte"`
	Line        int          `yaml:"line"`
	Column      int          `yaml:"column"`
	Original    string       `yaml:"original"`
	Replacement string       `yaml:"replacement"`
}

// Manifest lists every variant written by a run, in index order.
type Manifest struct {
	Strategy StrategyName    `yaml:"strategy"`
	Count    int             `yaml:"count"`
	Entries  []ManifestEntry `yaml:"entries"`
}
