package ir

// -----------------------------------------------------------------------------
// Component I/O Spec
// -----------------------------------------------------------------------------

// InputArtifactSpec is an input channel carrying a typed artifact reference.
type InputArtifactSpec struct {
	ArtifactType TypeSchema `json:"artifact_type" yaml:"artifact_type"`
}

// InputParameterSpec is an input channel carrying a scalar parameter value.
type InputParameterSpec struct {
	Type PrimitiveType `json:"type" yaml:"type"`
}

type OutputArtifactSpec struct {
	ArtifactType TypeSchema `json:"artifact_type" yaml:"artifact_type"`
}

type OutputParameterSpec struct {
	Type PrimitiveType `json:"type" yaml:"type"`
}

// InputsSpec groups a component's compiled input channels, keyed by the
// declared input name.
type InputsSpec struct {
	Parameters map[string]InputParameterSpec `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	Artifacts  map[string]InputArtifactSpec  `json:"artifacts,omitempty"  yaml:"artifacts,omitempty"`
}

type OutputsSpec struct {
	Parameters map[string]OutputParameterSpec `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	Artifacts  map[string]OutputArtifactSpec  `json:"artifacts,omitempty"  yaml:"artifacts,omitempty"`
}

// ComponentSpec is the IR-side view of one compiled component: its name
// and the typed I/O channels derived from its declaration.
type ComponentSpec struct {
	Name    string      `json:"name"              yaml:"name"`
	Inputs  InputsSpec  `json:"inputs,omitempty"  yaml:"inputs,omitempty"`
	Outputs OutputsSpec `json:"outputs,omitempty" yaml:"outputs,omitempty"`
}
