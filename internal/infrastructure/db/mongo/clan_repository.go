package mongo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/clanops/clan-gateway/internal/core/domain"
	"github.com/clanops/clan-gateway/internal/core/ports"
)

const (
	clansCollection   = "clans"
	membersCollection = "clan_members"
)

var _ ports.ClanRepository = (*ClanRepository)(nil)

// ClanRepository stores the clan/roster mirror. Clans live in one collection
// keyed by group id, roster entries in another keyed by clan.
type ClanRepository struct {
	clans   *mongo.Collection
	members *mongo.Collection
}

func NewClanRepository(db *mongo.Database) *ClanRepository {
	return &ClanRepository{
		clans:   db.Collection(clansCollection),
		members: db.Collection(membersCollection),
	}
}

type userDoc struct {
	ID         int64     `bson:"membership_id"`
	Name       string    `bson:"name"`
	NameLower  string    `bson:"name_lower"`
	Type       int       `bson:"type"`
	Types      []int     `bson:"types"`
	Icon       string    `bson:"icon,omitempty"`
	IsPublic   bool      `bson:"is_public"`
	ClanID     int64     `bson:"clan_id"`
	IsOnline   bool      `bson:"is_online"`
	JoinedAt   time.Time `bson:"joined_at"`
	LastOnline time.Time `bson:"last_online"`
	Code       int       `bson:"code"`
}

type featuresDoc struct {
	MaxMembers               int   `bson:"max_members"`
	MaxMembershipTypes       int   `bson:"max_membership_types"`
	Capabilities             int   `bson:"capabilities"`
	MembershipTypes          []int `bson:"membership_types"`
	InvitePermissions        bool  `bson:"invite_permissions"`
	UpdateBannerPermissions  bool  `bson:"update_banner_permissions"`
	UpdateCulturePermissions bool  `bson:"update_culture_permissions"`
	JoinLevel                int   `bson:"join_level"`
}

type clanDoc struct {
	ID          int64       `bson:"_id"`
	GroupType   int         `bson:"group_type"`
	Name        string      `bson:"name"`
	CreatedAt   time.Time   `bson:"created_at"`
	MemberCount int         `bson:"member_count"`
	Description *string     `bson:"description,omitempty"`
	IsPublic    bool        `bson:"is_public"`
	Banner      string      `bson:"banner,omitempty"`
	Avatar      string      `bson:"avatar,omitempty"`
	About       string      `bson:"about,omitempty"`
	Tags        []string    `bson:"tags"`
	Owner       *userDoc    `bson:"owner,omitempty"`
	Features    featuresDoc `bson:"features"`
	FetchedAt   time.Time   `bson:"fetched_at"`
}

// FindClan returns the stored clan. The result is not bound to a requester.
func (r *ClanRepository) FindClan(ctx context.Context, clanID int64) (*domain.Clan, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc clanDoc
	if err := r.clans.FindOne(ctx, bson.M{"_id": clanID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrClanNotFound
		}
		return nil, fmt.Errorf("find clan: %w", err)
	}
	return doc.toDomain()
}

// UpsertClan replaces the stored clan document, creating it when missing.
func (r *ClanRepository) UpsertClan(ctx context.Context, clan *domain.Clan, fetchedAt time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := newClanDoc(clan, fetchedAt)
	_, err := r.clans.ReplaceOne(ctx, bson.M{"_id": clan.ID}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("upsert clan: %w", err)
	}
	return nil
}

// ReplaceMembers drops the stored roster of clanID and writes members in one
// ordered bulk write.
func (r *ClanRepository) ReplaceMembers(ctx context.Context, clanID int64, members []*domain.ClanMember) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	models := make([]mongo.WriteModel, 0, len(members)+1)
	models = append(models, mongo.NewDeleteManyModel().SetFilter(bson.M{"clan_id": clanID}))
	for _, m := range members {
		doc := memberDoc(m)
		doc.ClanID = clanID
		models = append(models, mongo.NewInsertOneModel().SetDocument(doc))
	}

	if _, err := r.members.BulkWrite(ctx, models, options.BulkWrite().SetOrdered(true)); err != nil {
		return fmt.Errorf("replace members: %w", err)
	}
	return nil
}

// FetchClanMember matches name case-insensitively. NONE and ALL search
// every platform.
func (r *ClanRepository) FetchClanMember(ctx context.Context, clanID int64, name string, t domain.MembershipType) (*domain.ClanMember, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := memberFilter(clanID, t)
	filter["name_lower"] = strings.ToLower(name)

	var doc userDoc
	err := r.members.FindOne(ctx, filter, options.FindOne().SetSort(bson.D{{Key: "type", Value: 1}})).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrMemberNotFound
		}
		return nil, fmt.Errorf("find member: %w", err)
	}
	return doc.toMember(), nil
}

// FetchClanMembers returns the roster ordered by join date.
func (r *ClanRepository) FetchClanMembers(ctx context.Context, clanID int64, t domain.MembershipType) ([]*domain.ClanMember, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "joined_at", Value: 1}, {Key: "membership_id", Value: 1}})
	cur, err := r.members.Find(ctx, memberFilter(clanID, t), opts)
	if err != nil {
		return nil, fmt.Errorf("find members: %w", err)
	}
	defer cur.Close(ctx)

	var docs []userDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode members: %w", err)
	}

	out := make([]*domain.ClanMember, len(docs))
	for i := range docs {
		out[i] = docs[i].toMember()
	}
	return out, nil
}

// EnsureIndexes creates the roster lookup indexes.
func (r *ClanRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "clan_id", Value: 1}, {Key: "type", Value: 1}, {Key: "membership_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "clan_id", Value: 1}, {Key: "name_lower", Value: 1}}},
		{Keys: bson.D{{Key: "clan_id", Value: 1}, {Key: "joined_at", Value: 1}}},
	}

	_, err := r.members.Indexes().CreateMany(ctx, indexes)
	return err
}

func memberFilter(clanID int64, t domain.MembershipType) bson.M {
	filter := bson.M{"clan_id": clanID}
	if !t.AnyPlatform() {
		filter["type"] = int(t)
	}
	return filter
}

func newClanDoc(c *domain.Clan, fetchedAt time.Time) clanDoc {
	p := c.Features.Params()
	doc := clanDoc{
		ID:          c.ID,
		GroupType:   int(c.Type),
		Name:        c.Name,
		CreatedAt:   c.CreatedAt.UTC(),
		MemberCount: c.MemberCount,
		Description: c.Description,
		IsPublic:    c.IsPublic,
		Banner:      string(c.Banner),
		Avatar:      string(c.Avatar),
		About:       c.About,
		Tags:        c.Tags,
		Features: featuresDoc{
			MaxMembers:               p.MaxMembers,
			MaxMembershipTypes:       p.MaxMembershipTypes,
			Capabilities:             p.Capabilities,
			MembershipTypes:          typeInts(p.MembershipTypes),
			InvitePermissions:        p.InvitePermissions,
			UpdateBannerPermissions:  p.UpdateBannerPermissions,
			UpdateCulturePermissions: p.UpdateCulturePermissions,
			JoinLevel:                p.JoinLevel,
		},
		FetchedAt: fetchedAt.UTC(),
	}
	if o := c.Owner; o != nil {
		doc.Owner = &userDoc{
			ID:         o.ID,
			Name:       o.Name,
			NameLower:  strings.ToLower(o.Name),
			Type:       int(o.Type),
			Types:      typeInts(o.Types),
			Icon:       string(o.Icon),
			IsPublic:   o.IsPublic,
			ClanID:     c.ID,
			IsOnline:   o.IsOnline,
			JoinedAt:   o.JoinedAt.UTC(),
			LastOnline: o.LastOnline.UTC(),
			Code:       o.Code,
		}
	}
	return doc
}

func (d clanDoc) toDomain() (*domain.Clan, error) {
	features, err := domain.NewClanFeatures(domain.ClanFeaturesParams{
		MaxMembers:               d.Features.MaxMembers,
		MaxMembershipTypes:       d.Features.MaxMembershipTypes,
		Capabilities:             d.Features.Capabilities,
		MembershipTypes:          domain.MembershipTypes(d.Features.MembershipTypes),
		InvitePermissions:        d.Features.InvitePermissions,
		UpdateBannerPermissions:  d.Features.UpdateBannerPermissions,
		UpdateCulturePermissions: d.Features.UpdateCulturePermissions,
		JoinLevel:                d.Features.JoinLevel,
	})
	if err != nil {
		return nil, fmt.Errorf("stored clan %d: %w", d.ID, err)
	}

	clan := &domain.Clan{
		ID:          d.ID,
		Type:        domain.GroupType(d.GroupType),
		Name:        d.Name,
		CreatedAt:   d.CreatedAt.UTC(),
		MemberCount: d.MemberCount,
		Description: d.Description,
		IsPublic:    d.IsPublic,
		Banner:      domain.Image(d.Banner),
		Avatar:      domain.Image(d.Avatar),
		About:       d.About,
		Tags:        d.Tags,
		Features:    features,
	}
	if o := d.Owner; o != nil {
		clan.Owner = &domain.ClanOwner{
			ID:         o.ID,
			Name:       o.Name,
			Type:       domain.ParseMembershipType(o.Type),
			Types:      domain.MembershipTypes(o.Types),
			Icon:       domain.Image(o.Icon),
			IsPublic:   o.IsPublic,
			ClanID:     d.ID,
			IsOnline:   o.IsOnline,
			JoinedAt:   o.JoinedAt.UTC(),
			LastOnline: o.LastOnline.UTC(),
			Code:       o.Code,
		}
	}
	return clan, nil
}

func memberDoc(m *domain.ClanMember) userDoc {
	return userDoc{
		ID:         m.ID,
		Name:       m.Name,
		NameLower:  strings.ToLower(m.Name),
		Type:       int(m.Type),
		Types:      typeInts(m.Types),
		Icon:       string(m.Icon),
		IsPublic:   m.IsPublic,
		ClanID:     m.GroupID,
		IsOnline:   m.IsOnline,
		JoinedAt:   m.JoinedAt.UTC(),
		LastOnline: m.LastOnline.UTC(),
		Code:       m.Code,
	}
}

func (d userDoc) toMember() *domain.ClanMember {
	return &domain.ClanMember{
		ID:         d.ID,
		Name:       d.Name,
		Type:       domain.ParseMembershipType(d.Type),
		Types:      domain.MembershipTypes(d.Types),
		Icon:       domain.Image(d.Icon),
		IsPublic:   d.IsPublic,
		GroupID:    d.ClanID,
		IsOnline:   d.IsOnline,
		JoinedAt:   d.JoinedAt.UTC(),
		LastOnline: d.LastOnline.UTC(),
		Code:       d.Code,
	}
}

func typeInts(ts []domain.MembershipType) []int {
	out := make([]int, len(ts))
	for i, t := range ts {
		out[i] = int(t)
	}
	return out
}
