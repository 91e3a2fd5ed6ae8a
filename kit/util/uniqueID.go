package util

import (
	"github.com/bwmarrin/snowflake"
	"github.com/jxskiss/base62"
	"github.com/pkg/errors"
)

type UniqueIDGenerate struct {
	snowflakeNode *snowflake.Node
}

var singletonUniqueIDGenerate *UniqueIDGenerate

func GetUniqueIDGenerate() (*UniqueIDGenerate, error) {
	if singletonUniqueIDGenerate != nil {
		return singletonUniqueIDGenerate, nil
	}
	snowflakeNode, err := snowflake.NewNode(1)
	if err != nil {
		return nil, errors.Wrap(err, "create snowflake failed")
	}
	singletonUniqueIDGenerate = &UniqueIDGenerate{
		snowflakeNode: snowflakeNode,
	}
	return singletonUniqueIDGenerate, nil
}

func GetSnowflakeIDInt64() int64 {
	uniqueIDGenerate, err := GetUniqueIDGenerate()
	if err != nil {
		panic(err)
	}
	return uniqueIDGenerate.Generate().GetInt64()
}

func (u UniqueIDGenerate) Generate() *UniqueID {
	return &UniqueID{
		snowflakeID: u.snowflakeNode.Generate(),
	}
}

type UniqueID struct {
	snowflakeID snowflake.ID
}

func (u UniqueID) GetInt64() int64 {
	return u.snowflakeID.Int64()
}

func (u UniqueID) GetBase62() string {
	return string(base62.FormatInt(u.snowflakeID.Int64()))
}
