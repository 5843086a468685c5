package redis

import (
	"encoding/json"
	"fmt"
	"strings"

	"af-server/db"
	"af-server/models/activity"
)

const ACTIVITIES_GEO_KEY_V1 = "activities_geo_v1"
const ACTIVITIES_GEO_MEMBER_FORMAT_V1 = "activities_geo_place_v1:%s"

// RedisActivityDAO handles cached activity operations using Redis. Each
// activity lives twice: as a member of one GEO index and as a JSON blob
// under its member key, so both radius queries and ID lookups are cheap.
type RedisActivityDAO struct {
	client db.RedisClient
}

// NewRedisActivityDAO initializes a RedisActivityDAO with the Redis client.
func NewRedisActivityDAO(client db.RedisClient) *RedisActivityDAO {
	return &RedisActivityDAO{client: client}
}

// UpsertActivity stores the activity as a geolocation member with its
// JSON data. Records without coordinates cannot be geo-indexed.
func (dao *RedisActivityDAO) UpsertActivity(a activity.Activity) error {
	if !a.HasCoordinates() {
		return fmt.Errorf("activity %s has no coordinates, cannot geo-index", a.ID)
	}
	ctx := dao.client.GetContext()
	memberKey := fmt.Sprintf(ACTIVITIES_GEO_MEMBER_FORMAT_V1, a.ID)
	return dao.client.AddLocationWithJSON(ctx, ACTIVITIES_GEO_KEY_V1, memberKey, *a.Location.Lat, *a.Location.Lng, a)
}

// GetNearbyActivities retrieves cached activities within radiusKm
// kilometers of the given point.
func (dao *RedisActivityDAO) GetNearbyActivities(lat, lng, radiusKm float64) ([]activity.Activity, error) {
	blobs, err := dao.client.GetLocationsWithinRadius(ACTIVITIES_GEO_KEY_V1, lat, lng, radiusKm)
	if err != nil {
		return nil, fmt.Errorf("[RedisActivityDAO] failed to get activities: %w", err)
	}

	activities := make([]activity.Activity, len(blobs))
	for i, blob := range blobs {
		if err := json.Unmarshal([]byte(blob), &activities[i]); err != nil {
			return nil, fmt.Errorf("failed to unmarshal activity JSON: %w", err)
		}
	}
	return activities, nil
}

// GetActivity retrieves one cached activity by its ID.
func (dao *RedisActivityDAO) GetActivity(id string) (*activity.Activity, error) {
	memberKey := fmt.Sprintf(ACTIVITIES_GEO_MEMBER_FORMAT_V1, id)
	blob, err := dao.client.Get(memberKey)
	if err != nil {
		return nil, fmt.Errorf("failed to get activity %s from redis: %w", id, err)
	}
	var a activity.Activity
	if err := json.Unmarshal([]byte(blob), &a); err != nil {
		return nil, fmt.Errorf("failed to unmarshal activity JSON: %w", err)
	}
	return &a, nil
}

// ListActivityIDs returns all activity IDs present in the geo index.
func (dao *RedisActivityDAO) ListActivityIDs() ([]string, error) {
	pattern := fmt.Sprintf(ACTIVITIES_GEO_MEMBER_FORMAT_V1, "*")
	keys, err := dao.client.Keys(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to list activity keys: %w", err)
	}

	prefix := fmt.Sprintf(ACTIVITIES_GEO_MEMBER_FORMAT_V1, "")
	ids := make([]string, 0, len(keys))
	for _, k := range keys {
		ids = append(ids, strings.TrimPrefix(k, prefix))
	}
	return ids, nil
}

// DeleteActivity removes a cached activity blob by its ID.
func (dao *RedisActivityDAO) DeleteActivity(id string) error {
	memberKey := fmt.Sprintf(ACTIVITIES_GEO_MEMBER_FORMAT_V1, id)
	if err := dao.client.Del(memberKey); err != nil {
		return fmt.Errorf("failed to delete activity key %s: %w", memberKey, err)
	}
	return nil
}
