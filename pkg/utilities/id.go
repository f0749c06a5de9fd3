package utilities

import (
	"os"
	"strconv"
	"sync"

	"github.com/bwmarrin/snowflake"
	"github.com/segmentio/ksuid"
)

// NewKSUID generates a new globally unique KSUID string.
func NewKSUID() string {
	return ksuid.New().String()
}

var (
	nodeOnce sync.Once
	node     *snowflake.Node
)

// snowflakeNode lazily initializes a shared snowflake node. The node id
// comes from SNOWFLAKE_NODE and defaults to 1. Sharing one node keeps the
// per-millisecond sequence counter intact across calls.
func snowflakeNode() *snowflake.Node {
	nodeOnce.Do(func() {
		nodeID := int64(1)
		if v := os.Getenv("SNOWFLAKE_NODE"); v != "" {
			if n, err := strconv.ParseInt(v, 10, 64); err == nil {
				nodeID = n
			}
		}
		n, err := snowflake.NewNode(nodeID)
		if err != nil {
			// node ids outside [0,1023] are the only failure; fall back to 1
			n, _ = snowflake.NewNode(1)
		}
		node = n
	})
	return node
}

// NewSnowflakeID generates a snowflake ID string.
func NewSnowflakeID() string {
	return snowflakeNode().Generate().String()
}

// NewSnowflakeInt64 generates a snowflake ID as int64, used for primary keys
// assigned at creation time.
func NewSnowflakeInt64() int64 {
	return snowflakeNode().Generate().Int64()
}
