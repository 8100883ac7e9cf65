package seed

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	types "github.com/yungbote/careerpath-backend/internal/domain"
)

//go:embed samples.yaml
var samplesYAML []byte

type samples struct {
	Questions      []types.InsertQuestion      `yaml:"questions"`
	StudyMaterials []types.InsertStudyMaterial `yaml:"studyMaterials"`
}

func loadSamples() (samples, error) {
	var s samples
	if err := yaml.Unmarshal(samplesYAML, &s); err != nil {
		return samples{}, fmt.Errorf("decode bundled samples: %w", err)
	}
	return s, nil
}
