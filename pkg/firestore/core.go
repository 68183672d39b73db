package firestore

import (
	"cloud.google.com/go/firestore"
	"context"
	"fmt"
)

func get[T any](ctx context.Context, client *firestore.Client, documentPath string) (*T, error) {
	dr := client.Doc(documentPath)
	if dr == nil {
		return nil, fmt.Errorf("invalid document path, %s", documentPath)
	}

	ds, err := dr.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting document, %s", err)
	}

	t := new(T)
	if err = ds.DataTo(t); err != nil {
		return nil, fmt.Errorf("error decoding document, %s", err)
	}

	return t, nil
}

func update(ctx context.Context, client *firestore.Client, documentPath string, fields map[string]any) error {
	dr := client.Doc(documentPath)
	if dr == nil {
		return fmt.Errorf("invalid document path, %s", documentPath)
	}

	updates := make([]firestore.Update, 0)
	for k, v := range fields {
		updates = append(updates, firestore.Update{Path: k, Value: v})
	}

	if _, err := dr.Update(ctx, updates); err != nil {
		return fmt.Errorf("error updating document, %s", err)
	}

	return nil
}

// queryDocuments returns raw snapshots so callers can pair decoded data
// with the document ID, which targeted updates need.
func queryDocuments(ctx context.Context, client *firestore.Client, criteria QueryCriteria) ([]*firestore.DocumentSnapshot, error) {
	cr := client.Collection(criteria.Path)
	if cr == nil {
		return nil, fmt.Errorf("invalid collection path, %s", criteria.Path)
	}

	var q firestore.Query
	if criteria.Filter == nil {
		q = cr.Query
	} else {
		q = cr.WhereEntity(criteria.Filter)
	}

	if criteria.Limit > 0 {
		q = q.Limit(criteria.Limit)
	}

	iter := q.Documents(ctx)
	ds, err := iter.GetAll()
	if err != nil {
		return nil, fmt.Errorf("error querying documents, %s", err)
	}

	return ds, nil
}

type QueryCriteria struct {
	Path   string
	Filter firestore.EntityFilter
	Limit  int
}

const (
	Equal string = "=="
)

func createPropertyFilter(path, operator string, value any) firestore.PropertyFilter {
	return firestore.PropertyFilter{
		Path:     path,
		Operator: operator,
		Value:    value,
	}
}
