package store

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/dmitrijs2005/nutrio/internal/client/gateway"
	"github.com/dmitrijs2005/nutrio/internal/client/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAvatars struct {
	uploads   int
	uploadErr error
	urlErr    error
}

func (f *fakeAvatars) Upload(_ context.Context, userID, contentType string, data []byte) (string, error) {
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	f.uploads++
	return "s3://avatars/" + userID + "/a.png", nil
}

func (f *fakeAvatars) URL(_ context.Context, ref string) (string, error) {
	if f.urlErr != nil {
		return "", f.urlErr
	}
	return "https://cdn.local/" + strings.TrimPrefix(ref, "s3://") + "?sig=1", nil
}

func TestSetAvatar(t *testing.T) {
	ctx := context.Background()
	mem := newMemory()
	u := register(t, mem, "sara@example.com", "secret1", "Sara")
	av := &fakeAvatars{}
	s := newUserStore(t, mem, newMemKV(), WithAvatars(av))
	require.NoError(t, s.Login(ctx, "sara@example.com", "secret1"))

	require.NoError(t, s.SetAvatar(ctx, "image/png", []byte{0x89}))

	row, err := mem.Profiles().Get(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "s3://avatars/"+u.ID+"/a.png", row.AvatarURL)
	assert.Equal(t, "https://cdn.local/avatars/"+u.ID+"/a.png?sig=1", s.Snapshot().User.Avatar)

	av.urlErr = errors.New("expired credentials")
	s.FetchUserProfile(ctx)
	assert.Equal(t, mocks.DefaultAvatar, s.Snapshot().User.Avatar)
}

func TestSetAvatar_Failures(t *testing.T) {
	ctx := context.Background()

	s, _, _, _ := loggedIn(t)
	err := s.SetAvatar(ctx, "image/png", nil)
	assert.EqualError(t, err, "avatar storage is not configured")

	mem := newMemory()
	register(t, mem, "sara@example.com", "secret1", "Sara")
	av := &fakeAvatars{uploadErr: errors.New("upload failed: 403 Forbidden")}
	s = newUserStore(t, mem, newMemKV(), WithAvatars(av))
	require.NoError(t, s.Login(ctx, "sara@example.com", "secret1"))

	err = s.SetAvatar(ctx, "image/png", nil)
	assert.EqualError(t, err, "upload failed: 403 Forbidden")
	assert.Zero(t, mem.Calls(gateway.OpProfileUpdate))
}

func TestAvatarURL_PlainURLPassesThrough(t *testing.T) {
	ctx := context.Background()
	s, mem, _, u := loggedIn(t)
	url := "https://images.example.com/me.jpg"
	require.NoError(t, mem.Profiles().Update(ctx, u.ID, gateway.ProfileUpdate{AvatarURL: &url}))

	s.FetchUserProfile(ctx)
	assert.Equal(t, url, s.Snapshot().User.Avatar)
}
