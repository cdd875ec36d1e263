package trainer

import "os"
import "runtime"

import "github.com/klauspost/cpuid/v2"
import "github.com/pkg/errors"
import "go.uber.org/zap"
import "gopkg.in/yaml.v3"

type HyperParameters struct {
	Threads int `yaml:"threads"` // number of threads for evaluation

	Epochs    int `yaml:"epochs"`
	BatchSize int `yaml:"batch_size"`

	// statistical significance (0-100) of the accuracy sample, 0 or 100 evaluate everything
	Significance byte `yaml:"significance"`

	Shuffle bool  `yaml:"shuffle"` // whether to shuffle the samples before each epoch
	Seed    int64 `yaml:"seed"`    // shuffle seed of the first epoch, incremented each epoch

	Logger *zap.Logger `yaml:"-"`
}

// SetDefaults fills unset hyperparameters
func (h *HyperParameters) SetDefaults() {
	if h.Threads <= 0 {
		h.Threads = cpuid.CPU.LogicalCores
		if h.Threads <= 0 {
			h.Threads = runtime.NumCPU()
		}
	}
	if h.Epochs <= 0 {
		h.Epochs = 10
	}
	if h.BatchSize <= 0 {
		h.BatchSize = 2
	}
	if h.Significance == 0 {
		h.Significance = 95
	}
	if h.Logger == nil {
		h.Logger = zap.NewNop()
	}
}

// LoadHyperParameters reads hyperparameters from a YAML file and fills the defaults
func LoadHyperParameters(filename string) (h HyperParameters, err error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return h, errors.Wrap(err, "read hyperparameters")
	}
	if err = yaml.Unmarshal(data, &h); err != nil {
		return h, errors.Wrapf(err, "parse hyperparameters %s", filename)
	}
	if h.Significance > 100 {
		return h, errors.Errorf("significance %d out of range 0-100", h.Significance)
	}
	h.SetDefaults()
	return h, nil
}
