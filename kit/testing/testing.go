package testing

import "context"

type MongoDBContainer interface {
	GetURI() string
	Terminate(context.Context) error
}
