package firestore

import (
	"context"
	"fmt"
	"schedify/pkg/models"
)

func (fs *Firestore) User(ctx context.Context, id string) (*models.User, error) {
	path := fmt.Sprintf("%s/%s", pathUsers, id)
	return get[models.User](ctx, fs.client, path)
}
