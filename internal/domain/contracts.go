package domain

// ContractArtifact is the code of a compiled contract as found on disk
type ContractArtifact struct {
	Name         string
	SourceName   string
	ArtifactPath string
	InitCode     []byte
	RuntimeCode  []byte
}

// SizeStatus classifies a contract against the EVM code size limits
type SizeStatus string

const (
	SizeStatusOK        SizeStatus = "OK"
	SizeStatusAllowed   SizeStatus = "ALLOWED"   // over the limit on a network that lifts it
	SizeStatusViolation SizeStatus = "VIOLATION" // over the limit and the network enforces it
)

// ContractSize is the size report for a single contract
type ContractSize struct {
	Name          string     `json:"name"`
	SourceName    string     `json:"sourceName,omitempty"`
	RuntimeSize   int        `json:"runtimeSize"`
	InitCodeSize  int        `json:"initCodeSize"`
	RuntimeMargin int        `json:"runtimeMargin"` // bytes left before the runtime limit, negative when over
	Status        SizeStatus `json:"status"`
}
