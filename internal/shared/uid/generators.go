package uid

import (
	"context"
	"fmt"

	"github.com/bwmarrin/snowflake"
	"github.com/google/uuid"
)

type snowflakeGenerator struct {
	node *snowflake.Node
}

func newSnowflake(nodeID int64) (*snowflakeGenerator, error) {
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, fmt.Errorf("uid: failed to create snowflake node: %w", err)
	}
	return &snowflakeGenerator{node: node}, nil
}

// Generate is safe for concurrent use; snowflake.Node locks internally.
func (g *snowflakeGenerator) Generate(context.Context) (string, error) {
	return g.node.Generate().String(), nil
}

type uuidv7Generator struct{}

func (uuidv7Generator) Generate(context.Context) (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("uid: failed to generate uuid v7: %w", err)
	}
	return id.String(), nil
}
