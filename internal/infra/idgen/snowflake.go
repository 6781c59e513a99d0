// Package idgen mints order numbers for claims.
package idgen

import (
	"rewards/config"
	"rewards/internal/domain/service"

	"github.com/bwmarrin/snowflake"
	"github.com/pkg/errors"
)

// orderPrefix keeps order numbers recognizable on gateway statements.
const orderPrefix = "ORD"

type snowflakeGenerator struct {
	node *snowflake.Node
}

// NewOrderNumberGenerator creates a generator for the configured snowflake node.
// Every running process needs its own node id for numbers to stay unique.
func NewOrderNumberGenerator(cfg *config.Config) (service.OrderNumberGenerator, error) {
	var nodeID int64
	if cfg.Snowflake != nil {
		nodeID = cfg.Snowflake.NodeID
	}

	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid snowflake node %d", nodeID)
	}

	return &snowflakeGenerator{node: node}, nil
}

// NextOrderNo returns a unique, time-ordered order number such as ORD1541815603606036480.
func (g *snowflakeGenerator) NextOrderNo() string {
	return orderPrefix + g.node.Generate().String()
}
