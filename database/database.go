package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"travel-webapp/config"
	"travel-webapp/model"
	"travel-webapp/paystore"
)

var ctx = context.TODO()

var UsersCollection *mongo.Collection
var PackagesCollection *mongo.Collection
var BookingsCollection *mongo.Collection

// Payments is the injected payment-session store, set at startup
// (Redis in deployment, in-memory for single-node and tests).
var Payments paystore.Store

func DBInit(cfg config.MongoConfig, collectionName string) (*mongo.Collection, error) {
	if cfg.ConnString == "" {
		return nil, fmt.Errorf("cannot find connection string for DB in the configuration")
	}

	clientOptions := options.Client().ApplyURI(cfg.ConnString)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("cannot connect to the db: %v", err)
	}

	err = client.Ping(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("db is not available: %v", err)
	}

	return client.Database(cfg.Database).Collection(collectionName), nil
}

// GetPackages returns packages matching the optional filter. Non-admin
// callers only see active packages. Pass filterKey "" for no filter,
// or "_id" with a hex id.
func GetPackages(isAdmin bool, filterKey string, filterVals ...string) ([]model.HolidayPackage, error) {
	filter := bson.D{}
	if filterKey == "_id" && len(filterVals) > 0 {
		objId, err := primitive.ObjectIDFromHex(filterVals[0])
		if err != nil {
			return nil, fmt.Errorf("incorrect package id format: %v", err)
		}
		filter = append(filter, primitive.E{Key: "_id", Value: objId})
	} else if filterKey != "" && len(filterVals) > 0 {
		filter = append(filter, primitive.E{Key: filterKey, Value: filterVals[0]})
	}
	if !isAdmin {
		filter = append(filter, primitive.E{Key: "isActive", Value: true})
	}

	packages := []model.HolidayPackage{}
	cur, err := PackagesCollection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("server side problem occured while reading packages from database: %v", err)
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		var holidayPackage model.HolidayPackage
		if err := cur.Decode(&holidayPackage); err != nil {
			return nil, fmt.Errorf("server side problem occured while reading packages from database: %v", err)
		}
		packages = append(packages, holidayPackage)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("server side problem occured while reading packages from database: %v", err)
	}

	return packages, nil
}

// GetBookings returns all bookings for the given owner, or every booking
// when ownerLogin is empty (admin listing).
func GetBookings(ownerLogin string) ([]model.Booking, error) {
	filter := bson.D{}
	if ownerLogin != "" {
		filter = append(filter, primitive.E{Key: "userId", Value: ownerLogin})
	}

	bookings := []model.Booking{}
	cur, err := BookingsCollection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("server side problem occured while reading bookings from database: %v", err)
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		var booking model.Booking
		if err := cur.Decode(&booking); err != nil {
			return nil, fmt.Errorf("server side problem occured while reading bookings from database: %v", err)
		}
		bookings = append(bookings, booking)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("server side problem occured while reading bookings from database: %v", err)
	}

	return bookings, nil
}

func GetBooking(bookingId string) (model.Booking, error) {
	objId, err := primitive.ObjectIDFromHex(bookingId)
	if err != nil {
		return model.Booking{}, fmt.Errorf("incorrect booking id format: %v", err)
	}

	var booking model.Booking
	err = BookingsCollection.FindOne(ctx, bson.D{primitive.E{Key: "_id", Value: objId}}).Decode(&booking)
	if err == mongo.ErrNoDocuments {
		return model.Booking{}, fmt.Errorf("no booking with id %v in database", bookingId)
	} else if err != nil {
		return model.Booking{}, fmt.Errorf("server side problem occured while reading booking from database: %v", err)
	}

	return booking, nil
}

func WriteToCollection(item interface{}, collection *mongo.Collection) error {
	_, err := collection.InsertOne(ctx, item)
	if err != nil {
		return fmt.Errorf("failed to write new item to database: %v", err)
	}
	return nil
}

func UpdateCollectionItem(objId primitive.ObjectID, item interface{}, collection *mongo.Collection) error {
	_, err := collection.ReplaceOne(ctx, bson.D{primitive.E{Key: "_id", Value: objId}}, item)
	if err != nil {
		return fmt.Errorf("failed to update item in database: %v", err)
	}
	return nil
}

func DeleteFromCollection(id string, collection *mongo.Collection) error {
	objId, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("incorrect id format: %v", err)
	}

	res, err := collection.DeleteOne(ctx, bson.D{primitive.E{Key: "_id", Value: objId}})
	if err != nil {
		return fmt.Errorf("failed to delete item from database: %v", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("no item with id %v in database", id)
	}
	return nil
}

// IfPackageNameAlreadyExist guards against duplicate package names on
// create and rename.
func IfPackageNameAlreadyExist(name string) (bool, error) {
	count, err := PackagesCollection.CountDocuments(ctx, bson.D{primitive.E{Key: "name", Value: name}})
	if err != nil {
		return false, fmt.Errorf("server side problem occured while reading packages from database: %v", err)
	}
	return count > 0, nil
}

func GetUserData(userLogin string) (model.UserData, error) {
	var user model.UserData
	cur, err := UsersCollection.Find(ctx, bson.D{primitive.E{Key: "login", Value: userLogin}})
	if err != nil {
		return model.UserData{}, fmt.Errorf("server side problem occured while reading user data from database: %v", err)
	}

	for cur.Next(ctx) {
		err := cur.Decode(&user)
		if err != nil {
			return model.UserData{}, fmt.Errorf("server side problem occured while reading user data from database: %v", err)
		}
	}

	if err := cur.Err(); err != nil {
		return model.UserData{}, fmt.Errorf("server side problem occured while reading user data from database: %v", err)
	}

	cur.Close(ctx)

	return user, nil
}
