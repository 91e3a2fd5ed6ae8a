package mongo

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/superj80820/user-service/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type accountEntity struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	FirstName string             `bson:"first_name"`
	LastName  string             `bson:"last_name"`
	Email     string             `bson:"email"`
	Password  string             `bson:"password"`
	Role      string             `bson:"role"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func (a *accountEntity) toDomain() *domain.Account {
	return &domain.Account{
		ID:        a.ID.Hex(),
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Email:     a.Email,
		Password:  a.Password,
		Role:      a.Role,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

type accountRepo struct {
	accountCollection *mongo.Collection
}

// CreateAccountRepo keeps a unique index on email, so concurrent creates for
// the same normalized email serialize in the store.
func CreateAccountRepo(client *mongo.Client, databaseName string) (domain.AccountRepo, error) {
	accountCollection := client.Database(databaseName).Collection("users")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, err := accountCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return nil, errors.Wrap(err, "create email unique index failed")
	}

	return &accountRepo{accountCollection: accountCollection}, nil
}

func (a *accountRepo) Create(firstName, lastName, email, passwordHash string) (*domain.Account, error) {
	now := time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	result, err := a.accountCollection.InsertOne(ctx, bson.D{
		{Key: "first_name", Value: firstName},
		{Key: "last_name", Value: lastName},
		{Key: "email", Value: email},
		{Key: "password", Value: passwordHash},
		{Key: "role", Value: domain.RoleUser},
		{Key: "created_at", Value: now},
		{Key: "updated_at", Value: now},
	})
	if mongo.IsDuplicateKeyError(err) {
		return nil, errors.Wrap(domain.ErrDuplicate, "email already exists")
	} else if err != nil {
		return nil, errors.Wrap(err, "insert account failed")
	}

	accountID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, errors.New("get inserted id failed")
	}

	return &domain.Account{
		ID:        accountID.Hex(),
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Password:  passwordHash,
		Role:      domain.RoleUser,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func (a *accountRepo) Get(accountID string) (*domain.Account, error) {
	objectID, err := primitive.ObjectIDFromHex(accountID)
	if err != nil {
		return nil, errors.Wrap(domain.ErrNoData, "invalid account id")
	}

	var account accountEntity
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err = a.accountCollection.FindOne(ctx, bson.D{{Key: "_id", Value: objectID}}).Decode(&account)
	if err == mongo.ErrNoDocuments {
		return nil, errors.Wrap(domain.ErrNoData, "account not found")
	} else if err != nil {
		return nil, errors.Wrap(err, "find account failed")
	}

	return account.toDomain(), nil
}

func (a *accountRepo) GetByEmail(email string) (*domain.Account, error) {
	var account accountEntity
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err := a.accountCollection.FindOne(ctx, bson.D{{Key: "email", Value: email}}).Decode(&account)
	if err == mongo.ErrNoDocuments {
		return nil, errors.Wrap(domain.ErrNoData, "account not found")
	} else if err != nil {
		return nil, errors.Wrap(err, "find account failed")
	}

	return account.toDomain(), nil
}

func (a *accountRepo) UpdatePassword(accountID, passwordHash string) error {
	objectID, err := primitive.ObjectIDFromHex(accountID)
	if err != nil {
		return errors.Wrap(domain.ErrNoData, "invalid account id")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	result, err := a.accountCollection.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: objectID}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "password", Value: passwordHash},
			{Key: "updated_at", Value: time.Now()},
		}}},
	)
	if err != nil {
		return errors.Wrap(err, "update account password failed")
	}
	if result.MatchedCount == 0 {
		return errors.Wrap(domain.ErrNoData, "account not found")
	}
	return nil
}
