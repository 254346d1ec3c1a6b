package mcp

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

type getDataArgs struct {
	FileKey string `mapstructure:"fileKey"`
	NodeID  string `mapstructure:"nodeId"`
	Depth   int    `mapstructure:"depth"`
}

type imageNode struct {
	NodeID   string `mapstructure:"nodeId"`
	ImageRef string `mapstructure:"imageRef"`
	FileName string `mapstructure:"fileName"`
}

type downloadArgs struct {
	FileKey   string      `mapstructure:"fileKey"`
	Nodes     []imageNode `mapstructure:"nodes"`
	LocalPath string      `mapstructure:"localPath"`
	PNGScale  float64     `mapstructure:"pngScale"`
}

// decodeArgs maps loosely typed tool arguments onto a struct. JSON
// numbers arrive as float64, so decoding runs weakly typed.
func decodeArgs(in map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fmt.Errorf("build decoder: %w", err)
	}
	if err := dec.Decode(in); err != nil {
		return fmt.Errorf("decode arguments: %w", err)
	}
	return nil
}
