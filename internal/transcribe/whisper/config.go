package whisper

// validModelSizes enumerates the supported model size identifiers.
var validModelSizes = []string{
	"tiny.en", "tiny", "base.en", "base", "small.en", "small",
	"medium.en", "medium", "large-v1", "large-v2", "large-v3", "large",
	"large-v3-turbo", "turbo",
}

// modelFileAliases maps size identifiers that do not name their model file
// directly.
var modelFileAliases = map[string]string{
	"large": "large-v3",
	"turbo": "large-v3-turbo",
}

// DefaultModelSize is used when the configured size is not in the catalog.
const DefaultModelSize = "base"

// Config configures the in-process whisper.cpp backend.
type Config struct {
	// ModelSize selects the model (e.g. "base", "small.en", "large-v3").
	ModelSize string `yaml:"model_size" mapstructure:"model_size"`
	// ModelsDir is the directory containing ggml model files.
	ModelsDir string `yaml:"models_dir" mapstructure:"models_dir"`
	// Threads is the inference thread count. Zero lets whisper.cpp decide.
	Threads uint `yaml:"threads" mapstructure:"threads"`
	// FFmpegPath is the ffmpeg executable used for PCM decoding.
	FFmpegPath string `yaml:"ffmpeg_path" mapstructure:"ffmpeg_path"`
}

// ApplyDefaults applies default values to whisper configuration.
func (c *Config) ApplyDefaults() {
	if c.ModelSize == "" {
		c.ModelSize = DefaultModelSize
	}
	if c.ModelsDir == "" {
		c.ModelsDir = "models"
	}
	if c.FFmpegPath == "" {
		c.FFmpegPath = "ffmpeg"
	}
}

// IsValidModelSize reports whether size is in the supported catalog.
func IsValidModelSize(size string) bool {
	for _, s := range validModelSizes {
		if s == size {
			return true
		}
	}
	return false
}

// ValidModelSizes returns the supported model size identifiers.
func ValidModelSizes() []string {
	out := make([]string, len(validModelSizes))
	copy(out, validModelSizes)
	return out
}

// ModelFileName returns the ggml model file name for a size identifier.
func ModelFileName(size string) string {
	if alias, ok := modelFileAliases[size]; ok {
		size = alias
	}
	return "ggml-" + size + ".bin"
}
