package renderer

import "context"

// MockRenderer is a mock renderer for testing.
type MockRenderer struct {
	Err         error         // Error to return (takes precedence)
	CallCount   int           // Number of times Render was called
	LastGloss   GlossSequence // Last gloss sequence received
	LastAssetID string        // Last asset ID received
}

// NewMockRenderer creates a new mock renderer.
func NewMockRenderer() *MockRenderer {
	return &MockRenderer{}
}

// Render returns "mock://<assetID>" as the asset reference.
func (m *MockRenderer) Render(ctx context.Context, gloss GlossSequence, assetID string) (string, error) {
	m.CallCount++
	m.LastGloss = gloss
	m.LastAssetID = assetID

	if m.Err != nil {
		return "", m.Err
	}
	return "mock://" + assetID, nil
}

// Reset resets the recorded calls.
func (m *MockRenderer) Reset() {
	m.CallCount = 0
	m.LastGloss = nil
	m.LastAssetID = ""
}

// Verify MockRenderer implements Renderer
var _ Renderer = (*MockRenderer)(nil)
