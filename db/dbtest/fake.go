// Package dbtest provides an in-memory stand-in for the DynamoDB client.
package dbtest

import (
	"sync"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
	"github.com/pkg/errors"
)

// Fake stores items by "PK" for every table. Only the calls the store makes
// are implemented; anything else panics through the nil embedded interface.
type Fake struct {
	dynamodbiface.DynamoDBAPI

	mu         sync.Mutex
	Items      map[string]map[string]*dynamodb.AttributeValue
	BatchCalls int
	// Unprocess makes the first batch call report every key as unprocessed.
	Unprocess bool
	Err       error
}

func NewFake() *Fake {
	return &Fake{Items: make(map[string]map[string]*dynamodb.AttributeValue)}
}

func pk(item map[string]*dynamodb.AttributeValue) string {
	if v, ok := item["PK"]; ok && v.S != nil {
		return *v.S
	}
	return ""
}

func (f *Fake) PutItemWithContext(_ aws.Context, in *dynamodb.PutItemInput, _ ...request.Option) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	id := pk(in.Item)
	if id == "" {
		return nil, errors.New("missing PK")
	}
	f.Items[id] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *Fake) GetItemWithContext(_ aws.Context, in *dynamodb.GetItemInput, _ ...request.Option) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	return &dynamodb.GetItemOutput{Item: f.Items[pk(in.Key)]}, nil
}

func (f *Fake) BatchGetItemWithContext(_ aws.Context, in *dynamodb.BatchGetItemInput, _ ...request.Option) (*dynamodb.BatchGetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	f.BatchCalls += 1
	if f.Unprocess && f.BatchCalls == 1 {
		return &dynamodb.BatchGetItemOutput{UnprocessedKeys: in.RequestItems}, nil
	}

	out := &dynamodb.BatchGetItemOutput{
		Responses: make(map[string][]map[string]*dynamodb.AttributeValue),
	}
	for table, ka := range in.RequestItems {
		for _, k := range ka.Keys {
			if item, ok := f.Items[pk(k)]; ok {
				out.Responses[table] = append(out.Responses[table], item)
			}
		}
	}
	return out, nil
}
