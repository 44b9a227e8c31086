package db

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
	"github.com/google/uuid"
	"github.com/jsphweid/chordsheet/constants"
	"github.com/jsphweid/chordsheet/model"
	"github.com/jsphweid/chordsheet/root"
	"github.com/pkg/errors"
)

var ErrNotFound = errors.New("sheet not found")

func NewClient(cfg constants.Config) (dynamodbiface.DynamoDBAPI, error) {
	sess, err := session.NewSession(&aws.Config{
		Region:   aws.String(cfg.DynamoRegion),
		Endpoint: aws.String(cfg.DynamoEndpoint),
	})
	if err != nil {
		return nil, errors.Wrap(err, "could not create a new DynamoDB session")
	}
	return dynamodb.New(sess), nil
}

// Store keeps chord sheets in a DynamoDB table keyed by "PK".
type Store struct {
	client dynamodbiface.DynamoDBAPI
	table  string
	now    func() time.Time
}

func NewStore(client dynamodbiface.DynamoDBAPI, table string) *Store {
	return &Store{client: client, table: table, now: time.Now}
}

// PutSheet writes sheet, assigning an id and creation time when missing,
// and returns what was stored.
func (s *Store) PutSheet(ctx context.Context, sheet model.Sheet) (model.Sheet, error) {
	if sheet.Id == "" {
		sheet.Id = uuid.New().String()
	}
	if sheet.Created.IsZero() {
		sheet.Created = s.now().UTC()
	}

	_, err := s.client.PutItemWithContext(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.table),
		Item:      toItem(sheet),
	})
	if err != nil {
		return model.Sheet{}, errors.Wrapf(err, "could not put sheet %v", sheet.Id)
	}
	return sheet, nil
}

func (s *Store) GetSheet(ctx context.Context, id string) (model.Sheet, error) {
	out, err := s.client.GetItemWithContext(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.table),
		Key:       key(id),
	})
	if err != nil {
		return model.Sheet{}, errors.Wrapf(err, "could not get sheet %v", id)
	}
	if len(out.Item) == 0 {
		return model.Sheet{}, errors.Wrapf(ErrNotFound, "%v", id)
	}
	return fromItem(out.Item)
}

// GetSheets looks up many sheets at once. Missing ids are absent from the
// result.
func (s *Store) GetSheets(ctx context.Context, ids []string) (map[string]model.Sheet, error) {
	res := make(map[string]model.Sheet)
	for start := 0; start < len(ids); start += constants.MaxBatchSize {
		end := start + constants.MaxBatchSize
		if end > len(ids) {
			end = len(ids)
		}

		var keys []map[string]*dynamodb.AttributeValue
		for _, id := range ids[start:end] {
			keys = append(keys, key(id))
		}
		pending := map[string]*dynamodb.KeysAndAttributes{
			s.table: {Keys: keys},
		}

		for len(pending) > 0 {
			out, err := s.client.BatchGetItemWithContext(ctx, &dynamodb.BatchGetItemInput{
				RequestItems: pending,
			})
			if err != nil {
				return nil, errors.Wrap(err, "could not batch get sheets")
			}
			for _, item := range out.Responses[s.table] {
				sheet, err := fromItem(item)
				if err != nil {
					return nil, err
				}
				res[sheet.Id] = sheet
			}
			pending = out.UnprocessedKeys
		}
	}
	return res, nil
}

func key(id string) map[string]*dynamodb.AttributeValue {
	return map[string]*dynamodb.AttributeValue{
		"PK": {S: aws.String(id)},
	}
}

func toItem(sheet model.Sheet) map[string]*dynamodb.AttributeValue {
	item := key(sheet.Id)
	item["Title"] = &dynamodb.AttributeValue{S: aws.String(sheet.Title)}
	item["Key"] = &dynamodb.AttributeValue{S: aws.String(sheet.Key.String())}
	item["Text"] = &dynamodb.AttributeValue{S: aws.String(sheet.Text)}
	item["Created"] = &dynamodb.AttributeValue{S: aws.String(sheet.Created.Format(time.RFC3339Nano))}
	return item
}

func fromItem(item map[string]*dynamodb.AttributeValue) (model.Sheet, error) {
	var s model.Sheet
	s.Id = str(item, "PK")
	s.Title = str(item, "Title")
	s.Text = str(item, "Text")

	k, err := root.Parse(str(item, "Key"))
	if err != nil {
		return model.Sheet{}, errors.Wrapf(err, "sheet %v has a bad key", s.Id)
	}
	s.Key = k

	if created := str(item, "Created"); created != "" {
		t, err := time.Parse(time.RFC3339Nano, created)
		if err != nil {
			return model.Sheet{}, errors.Wrapf(err, "sheet %v has a bad creation time", s.Id)
		}
		s.Created = t
	}
	return s, nil
}

func str(item map[string]*dynamodb.AttributeValue, name string) string {
	if v, ok := item[name]; ok && v.S != nil {
		return *v.S
	}
	return ""
}
