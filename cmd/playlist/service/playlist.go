package service

import (
	"context"
	"strings"

	"VideoHub.com/cmd/model"
	"VideoHub.com/cmd/playlist/dal/db"
	videodb "VideoHub.com/cmd/video/dal/db"
	"VideoHub.com/pkg/errno"
	"github.com/pkg/errors"
)

type PlaylistService struct {
	ctx context.Context
}

func NewPlaylistService(ctx context.Context) *PlaylistService {
	return &PlaylistService{ctx: ctx}
}

// ListPlaylists returns the caller's playlists, or only the public ones when
// userId names somebody else.
func (s *PlaylistService) ListPlaylists(actor *model.User, userId string) ([]*model.Playlist, error) {
	owner := actor.ID
	if userId != "" {
		owner = userId
	}
	playlists, err := db.ListPlaylists(s.ctx, owner, owner != actor.ID)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.ListPlaylists failed")
	}
	return playlists, nil
}

func (s *PlaylistService) CreatePlaylist(actor *model.User, req *PlaylistRequest) (*model.Playlist, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, errno.PlaylistTitleErr
	}
	playlist := &model.Playlist{
		Title:       title,
		Description: strings.TrimSpace(req.Description),
		IsPublic:    req.IsPublic == nil || *req.IsPublic,
		UserID:      actor.ID,
	}
	if err := db.CreatePlaylist(s.ctx, playlist); err != nil {
		return nil, errors.WithMessage(err, "dao.CreatePlaylist failed")
	}
	playlist.User = model.Author{ID: actor.ID, Username: actor.Username, Name: actor.Name, Avatar: actor.Avatar}
	playlist.PlaylistVideos = []model.PlaylistVideo{}
	return playlist, nil
}

// GetPlaylist lets anyone read a public playlist; private ones only their
// owner. viewer may be nil.
func (s *PlaylistService) GetPlaylist(viewer *model.User, playlistId string) (*model.Playlist, error) {
	playlist, err := s.load(playlistId)
	if err != nil {
		return nil, err
	}
	if !playlist.IsPublic && (viewer == nil || viewer.ID != playlist.UserID) {
		return nil, errno.PermissionDeniedErr
	}
	return playlist, nil
}

func (s *PlaylistService) UpdatePlaylist(actor *model.User, playlistId string, req *PlaylistRequest) (*model.Playlist, error) {
	playlist, err := s.owned(actor, playlistId)
	if err != nil {
		return nil, err
	}
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, errno.PlaylistTitleErr
	}
	isPublic := playlist.IsPublic
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}
	if err = db.UpdatePlaylist(s.ctx, playlistId, title, strings.TrimSpace(req.Description), isPublic); err != nil {
		return nil, errors.WithMessage(err, "dao.UpdatePlaylist failed")
	}
	return s.load(playlistId)
}

func (s *PlaylistService) DeletePlaylist(actor *model.User, playlistId string) error {
	if _, err := s.owned(actor, playlistId); err != nil {
		return err
	}
	if err := db.DeletePlaylist(s.ctx, playlistId); err != nil {
		return errors.WithMessage(err, "dao.DeletePlaylist failed")
	}
	return nil
}

// AddVideo appends a published video to the end of the playlist.
func (s *PlaylistService) AddVideo(actor *model.User, playlistId, videoId string) (*model.PlaylistVideo, error) {
	if videoId == "" {
		return nil, errno.PlaylistVideoIDErr
	}
	if _, err := s.owned(actor, playlistId); err != nil {
		return nil, err
	}
	video, err := videodb.GetVideoCard(s.ctx, videoId, false)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetVideoCard failed")
	}
	if video == nil {
		return nil, errno.VideoNotFoundErr
	}
	entry, err := db.AddPlaylistVideo(s.ctx, playlistId, videoId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.AddPlaylistVideo failed")
	}
	entry.Video = video
	return entry, nil
}

func (s *PlaylistService) RemoveVideo(actor *model.User, playlistId, videoId string) error {
	if videoId == "" {
		return errno.PlaylistVideoIDErr
	}
	if _, err := s.owned(actor, playlistId); err != nil {
		return err
	}
	found, err := db.RemovePlaylistVideo(s.ctx, playlistId, videoId)
	if err != nil {
		return errors.WithMessage(err, "dao.RemovePlaylistVideo failed")
	}
	if !found {
		return errno.PlaylistVideoNotFoundErr
	}
	return nil
}

func (s *PlaylistService) load(playlistId string) (*model.Playlist, error) {
	playlist, err := db.GetPlaylist(s.ctx, playlistId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetPlaylist failed")
	}
	if playlist == nil {
		return nil, errno.PlaylistNotFoundErr
	}
	return playlist, nil
}

// owned 歌单不存在返回 404, 不是自己的返回 403
func (s *PlaylistService) owned(actor *model.User, playlistId string) (*model.Playlist, error) {
	playlist, err := s.load(playlistId)
	if err != nil {
		return nil, err
	}
	if playlist.UserID != actor.ID {
		return nil, errno.PermissionDeniedErr
	}
	return playlist, nil
}
