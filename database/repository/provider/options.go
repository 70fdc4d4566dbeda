// File: database/repository/provider/options.go
package providerRepo

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func optionsWithProjection(projection bson.M) []*options.FindOneOptions {
	if projection == nil {
		return nil
	}
	return []*options.FindOneOptions{options.FindOne().SetProjection(projection)}
}
