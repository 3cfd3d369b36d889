package idgen

import (
	"fmt"

	"github.com/bwmarrin/snowflake"
)

var node *snowflake.Node

// Init creates the process-wide snowflake node. The node id must be unique
// per running instance when several share one database.
func Init(nodeID int64) error {
	n, err := snowflake.NewNode(nodeID)
	if err != nil {
		return fmt.Errorf("init snowflake node %d: %w", nodeID, err)
	}
	node = n
	return nil
}

// GenerateID panics if Init was never called. main wires it before the
// first insert, tests that never hit the database do not need it.
func GenerateID() int64 {
	return node.Generate().Int64()
}
