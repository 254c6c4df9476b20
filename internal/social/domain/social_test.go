package domain

import (
	"testing"

	videodomain "video_platform_service/internal/video/domain"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestLike_Validate(t *testing.T) {
	user := primitive.NewObjectID()
	target := primitive.NewObjectID()

	assert.NoError(t, VideoLike(user, target).Validate())
	assert.NoError(t, CommentLike(user, target).Validate())

	both := VideoLike(user, target)
	both.Comment = &target
	assert.ErrorIs(t, both.Validate(), ErrInvalidLike)

	assert.ErrorIs(t, (&Like{LikedBy: user}).Validate(), ErrInvalidLike)
	assert.ErrorIs(t, VideoLike(primitive.NilObjectID, target).Validate(), ErrInvalidLike)
}

func TestNewSubscription_Self(t *testing.T) {
	id := primitive.NewObjectID()
	_, err := NewSubscription(id, id)
	assert.ErrorIs(t, err, ErrSelfSubscription)

	sub, err := NewSubscription(id, primitive.NewObjectID())
	assert.NoError(t, err)
	assert.Equal(t, id, sub.Subscriber)
}

func TestPlaylist_Visibility(t *testing.T) {
	owner := primitive.NewObjectID()
	p := &Playlist{Owner: owner}

	assert.True(t, p.VisibleTo(owner.Hex()))
	assert.False(t, p.VisibleTo(primitive.NewObjectID().Hex()))
	assert.False(t, p.VisibleTo(""))

	p.IsPublic = true
	assert.True(t, p.VisibleTo(""))
}

func TestPlaylist_WithVideosDropsHidden(t *testing.T) {
	owner := primitive.NewObjectID()
	p := &Playlist{Owner: owner, Name: "mix"}

	published := videodomain.Details{ID: primitive.NewObjectID(), IsPublished: true}
	draft := videodomain.Details{ID: primitive.NewObjectID()}
	draft.Owner.ID = primitive.NewObjectID()

	d := p.WithVideos([]videodomain.Details{published, draft}, owner.Hex())
	assert.Equal(t, 1, d.TotalVideos)
	assert.Equal(t, published.ID, d.Videos[0].ID)
}

func TestComment_IsReply(t *testing.T) {
	c := &Comment{}
	assert.False(t, c.IsReply())
	parent := primitive.NewObjectID()
	c.ParentComment = &parent
	assert.True(t, c.IsReply())
}

func TestPlaylist_Contains(t *testing.T) {
	in, out := primitive.NewObjectID(), primitive.NewObjectID()
	p := &Playlist{Videos: []primitive.ObjectID{in}}
	assert.True(t, p.Contains(in))
	assert.False(t, p.Contains(out))
	assert.False(t, (&Playlist{}).Contains(in))
}
