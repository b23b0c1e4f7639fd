package snowflake

import "github.com/bwmarrin/snowflake"

var node *snowflake.Node

func init() {
	node, _ = snowflake.NewNode(1)
}

// GenID 生成全局唯一业务单号
func GenID() int64 {
	return node.Generate().Int64()
}

// GenSourceID 生成带前缀的流水业务单号，如 gacha:1849300123
func GenSourceID(prefix string) string {
	return prefix + ":" + node.Generate().String()
}
