package internal

import (
	"context"
	"fmt"
	"log"

	"hotelpay/config"
	"hotelpay/entity"
	"hotelpay/services"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	collectionLog      = "payment_log"
	collectionAttempts = "payment_attempts"
	collectionResults  = "payment_results"
)

type MongoDB struct {
	ctx              context.Context
	clientOptions    *options.ClientOptions
	database         string
	logRecordsNumber int64
}

func NewMongoClient(conf *config.Config) (*MongoDB, error) {
	if !conf.Mongo.Enabled {
		return nil, nil
	}
	connectionUri := fmt.Sprintf("mongodb://%s:%s", conf.Mongo.Host, conf.Mongo.Port)
	clientOptions := options.Client().ApplyURI(connectionUri)
	if conf.Mongo.User != "" {
		clientOptions.SetAuth(options.Credential{
			Username:   conf.Mongo.User,
			Password:   conf.Mongo.Password,
			AuthSource: conf.Mongo.Database,
		})
	}
	client := &MongoDB{
		ctx:              context.Background(),
		clientOptions:    clientOptions,
		database:         conf.Mongo.Database,
		logRecordsNumber: conf.LogRecords,
	}
	return client, nil
}

func (m *MongoDB) WriteLogMessage(data services.Data) error {
	connection, err := m.connect()
	if err != nil {
		return err
	}
	defer m.disconnect(connection)
	collection := connection.Database(m.database).Collection(collectionLog)
	_, err = collection.InsertOne(m.ctx, data)
	return err
}

// SavePaymentAttempt upserts an attempt record keyed by transaction id.
// Identifiers are unique per initiation, so the upsert only ever updates
// the lifecycle of one attempt.
func (m *MongoDB) SavePaymentAttempt(ctx context.Context, attempt *entity.PaymentAttempt) error {
	connection, err := m.connect()
	if err != nil {
		return err
	}
	defer m.disconnect(connection)

	filter := bson.D{{Key: "txnid", Value: attempt.TxnId}}
	set := bson.M{"$set": attempt}
	collection := connection.Database(m.database).Collection(collectionAttempts)
	_, err = collection.UpdateOne(ctx, filter, set, options.Update().SetUpsert(true))
	if err != nil {
		return err
	}
	return nil
}

func (m *MongoDB) GetPaymentAttempt(ctx context.Context, txnId string) (*entity.PaymentAttempt, error) {
	connection, err := m.connect()
	if err != nil {
		return nil, err
	}
	defer m.disconnect(connection)

	filter := bson.D{{Key: "txnid", Value: txnId}}
	collection := connection.Database(m.database).Collection(collectionAttempts)
	var attempt entity.PaymentAttempt
	if err = collection.FindOne(ctx, filter).Decode(&attempt); err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (m *MongoDB) SaveGatewayResult(ctx context.Context, result *entity.GatewayResult) error {
	connection, err := m.connect()
	if err != nil {
		return err
	}
	defer m.disconnect(connection)

	collection := connection.Database(m.database).Collection(collectionResults)
	_, err = collection.InsertOne(ctx, result)
	return err
}

func (m *MongoDB) connect() (*mongo.Client, error) {
	connection, err := mongo.Connect(m.ctx, m.clientOptions)
	if err != nil {
		return nil, err
	}
	return connection, nil
}

func (m *MongoDB) disconnect(connection *mongo.Client) {
	err := connection.Disconnect(m.ctx)
	if err != nil {
		log.Println("mongodb disconnect error", err)
	}
}
