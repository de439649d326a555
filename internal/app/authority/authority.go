// internal/app/authority/authority.go

// Package authority owns the membership lifecycle state machine: who may
// add, remove, promote, demote, or soft-delete a member of an
// organization, and the atomic create/destroy units around it.
//
// State machine per membership: Active(admin=false) ⇄ Active(admin=true),
// any Active → Deleted (terminal for normal flows). The owner flag is set
// once at creation and never transitions; owners are always effectively
// admin.
package authority

import (
	"context"
	"errors"

	membershipstore "github.com/dalemusser/labelhub/internal/app/store/memberships"
	organizationstore "github.com/dalemusser/labelhub/internal/app/store/organizations"
	projectstore "github.com/dalemusser/labelhub/internal/app/store/projects"
	"github.com/dalemusser/labelhub/internal/app/store/queries/orgmembers"
	"github.com/dalemusser/labelhub/internal/app/store/queries/userorgs"
	ssostore "github.com/dalemusser/labelhub/internal/app/store/sso"
	userstore "github.com/dalemusser/labelhub/internal/app/store/users"
	"github.com/dalemusser/labelhub/internal/app/system/txn"
	"github.com/dalemusser/labelhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Authority enforces the membership invariants. All mutating operations
// run the shared Authorizer gate and execute within a single
// request-scoped unit; multi-write units go through txn.Run.
type Authority struct {
	db    *mongo.Database
	log   *zap.Logger
	authz Authorizer

	orgs     *organizationstore.Store
	members  *membershipstore.Store
	users    *userstore.Store
	projects *projectstore.Store
	sso      *ssostore.Store
}

// New constructs the Authority. Pass nil for authorizer to use the
// production admin-or-superuser gate.
func New(db *mongo.Database, logger *zap.Logger, authorizer Authorizer) *Authority {
	if authorizer == nil {
		authorizer = NewAdminAuthorizer(db)
	}
	return &Authority{
		db:       db,
		log:      logger,
		authz:    authorizer,
		orgs:     organizationstore.New(db),
		members:  membershipstore.New(db),
		users:    userstore.New(db),
		projects: projectstore.New(db),
		sso:      ssostore.New(db),
	}
}

// CreateOrganization creates the organization together with the creator's
// owner membership in one atomic unit. Both writes land or neither does.
func (a *Authority) CreateOrganization(ctx context.Context, title, contactInfo string, createdBy primitive.ObjectID) (models.Organization, error) {
	if err := checkTitle(title); err != nil {
		return models.Organization{}, err
	}

	var created models.Organization
	err := txn.Run(ctx, a.db, a.log, func(ctx context.Context) error {
		org, err := a.orgs.Create(ctx, models.Organization{
			Title:       title,
			ContactInfo: contactInfo,
			CreatedBy:   &createdBy,
		})
		if err != nil {
			return err
		}
		if _, err := a.members.Insert(ctx, models.Membership{
			OrgID:  org.ID,
			UserID: createdBy,
			Owner:  true,
			Admin:  true,
		}); err != nil {
			return err
		}
		created = org
		return nil
	})
	if err != nil {
		return models.Organization{}, err
	}

	a.log.Info("organization created",
		zap.String("org_id", created.ID.Hex()),
		zap.String("created_by", createdBy.Hex()))
	return created, nil
}

// DestroyOrganization deletes the organization and everything it owns:
// memberships (tombstones included), projects, and any SSO binding. The
// cascade is one atomic unit of bulk deletes; no per-row removal side
// effects fire on this path.
func (a *Authority) DestroyOrganization(ctx context.Context, orgID, requesterID primitive.ObjectID) error {
	if _, err := a.orgs.GetByID(ctx, orgID); err != nil {
		if err == mongo.ErrNoDocuments {
			return notFound("organization not found")
		}
		return err
	}
	if err := a.authz.Authorize(ctx, requesterID, orgID); err != nil {
		return err
	}

	var memberships, projects int64
	err := txn.Run(ctx, a.db, a.log, func(ctx context.Context) error {
		var err error
		if memberships, err = a.members.DeleteByOrg(ctx, orgID); err != nil {
			return err
		}
		if projects, err = a.projects.DeleteByOrg(ctx, orgID); err != nil {
			return err
		}
		if _, err = a.sso.DeleteByOrg(ctx, orgID); err != nil {
			return err
		}
		_, err = a.orgs.Delete(ctx, orgID)
		return err
	})
	if err != nil {
		return err
	}

	a.log.Info("organization destroyed",
		zap.String("org_id", orgID.Hex()),
		zap.Int64("memberships", memberships),
		zap.Int64("projects", projects))
	return nil
}

// AddMember adds target as a plain member. Adding someone who is already
// an active member is an idempotent no-op, including the losing side of a
// concurrent add racing on the unique index.
func (a *Authority) AddMember(ctx context.Context, orgID, requesterID, targetID primitive.ObjectID) (models.Membership, error) {
	if _, err := a.orgs.GetByID(ctx, orgID); err != nil {
		if err == mongo.ErrNoDocuments {
			return models.Membership{}, notFound("organization not found")
		}
		return models.Membership{}, err
	}
	if err := a.authz.Authorize(ctx, requesterID, orgID); err != nil {
		return models.Membership{}, err
	}
	ok, err := a.users.Exists(ctx, targetID)
	if err != nil {
		return models.Membership{}, err
	}
	if !ok {
		return models.Membership{}, notFound("user not found")
	}

	m, err := a.members.Insert(ctx, models.Membership{
		OrgID:  orgID,
		UserID: targetID,
	})
	if err == membershipstore.ErrDuplicateMembership {
		a.log.Debug("user already a member; add is a no-op",
			zap.String("org_id", orgID.Hex()),
			zap.String("user_id", targetID.Hex()))
		existing, readErr := a.members.GetActive(ctx, orgID, targetID)
		return resolveDuplicateAdd(existing, readErr)
	}
	if err != nil {
		return models.Membership{}, err
	}
	return m, nil
}

// RemoveMember soft-deletes target's membership. The row is tombstoned,
// never erased: history and audit keep it. Removing yourself is refused
// as an invalid transition, not silently ignored.
func (a *Authority) RemoveMember(ctx context.Context, orgID, requesterID, targetID primitive.ObjectID) error {
	if _, err := a.orgs.GetByID(ctx, orgID); err != nil {
		if err == mongo.ErrNoDocuments {
			return notFound("organization not found")
		}
		return err
	}
	target, err := a.members.GetActive(ctx, orgID, targetID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return notFound("member not found")
		}
		return err
	}
	if err := a.authz.Authorize(ctx, requesterID, orgID); err != nil {
		return err
	}
	if err := checkRemoval(requesterID, target); err != nil {
		return err
	}

	// Compare-and-swap on deleted_at: a racing remove that already
	// tombstoned the row turns this into the same NotFound the caller
	// would have seen a moment later.
	matched, err := a.members.SoftDelete(ctx, orgID, targetID)
	if err != nil {
		return err
	}
	if !matched {
		return notFound("member not found")
	}
	return nil
}

// PromoteToAdmin grants target the admin capability. Promoting an owner
// is a no-op success: owners are already admins by construction.
func (a *Authority) PromoteToAdmin(ctx context.Context, orgID, requesterID, targetID primitive.ObjectID) error {
	target, err := a.gateAndLoad(ctx, orgID, requesterID, targetID)
	if err != nil {
		return err
	}
	if promoteIsNoop(target) {
		return nil
	}
	matched, err := a.members.SetAdmin(ctx, orgID, targetID, true)
	if err != nil {
		return err
	}
	if !matched {
		return notFound("member not found")
	}
	return nil
}

// DemoteFromAdmin revokes target's admin capability. Owners cannot be
// demoted by anyone; a non-owner admin may demote any non-owner admin,
// themself included.
func (a *Authority) DemoteFromAdmin(ctx context.Context, orgID, requesterID, targetID primitive.ObjectID) error {
	target, err := a.gateAndLoad(ctx, orgID, requesterID, targetID)
	if err != nil {
		return err
	}
	if err := checkDemotion(requesterID, target); err != nil {
		return err
	}
	matched, err := a.members.SetAdmin(ctx, orgID, targetID, false)
	if err != nil {
		return err
	}
	if !matched {
		return notFound("member not found")
	}
	return nil
}

// Authorize exposes the shared capability gate to the routing layer for
// per-endpoint checks.
func (a *Authority) Authorize(ctx context.Context, requesterID, orgID primitive.ObjectID) error {
	return a.authz.Authorize(ctx, requesterID, orgID)
}

// ListMembers is the read-side projection of an organization's members,
// ordered by username. The organization must exist.
func (a *Authority) ListMembers(ctx context.Context, orgID primitive.ObjectID, opts orgmembers.Options) ([]orgmembers.Member, error) {
	if _, err := a.orgs.GetByID(ctx, orgID); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, notFound("organization not found")
		}
		return nil, err
	}
	return orgmembers.List(ctx, a.db, orgID, opts)
}

// ListOrganizationsForUser returns the organizations where the user holds
// an active membership.
func (a *Authority) ListOrganizationsForUser(ctx context.Context, userID primitive.ObjectID) ([]models.Organization, error) {
	return userorgs.List(ctx, a.db, userID)
}

// OrganizationDetail is the read model for a single organization: the
// record plus the live counts its settings page shows.
type OrganizationDetail struct {
	models.Organization
	MembersCount  int64 `json:"members_count"`
	ProjectsCount int64 `json:"projects_count"`
}

// GetOrganization returns the organization with its active member and
// project counts. Any active member may read it; non-members are denied
// unless they carry the directory superuser override.
func (a *Authority) GetOrganization(ctx context.Context, orgID, requesterID primitive.ObjectID) (OrganizationDetail, error) {
	org, err := a.orgs.GetByID(ctx, orgID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return OrganizationDetail{}, notFound("organization not found")
		}
		return OrganizationDetail{}, err
	}

	if _, err := a.members.GetActive(ctx, orgID, requesterID); err != nil {
		if !errors.Is(err, mongo.ErrNoDocuments) {
			return OrganizationDetail{}, err
		}
		super, serr := a.users.IsSuperuser(ctx, requesterID)
		if serr != nil {
			return OrganizationDetail{}, serr
		}
		if !super {
			return OrganizationDetail{}, permissionDenied("you must be a member of this organization")
		}
	}

	members, err := a.members.CountActiveByOrg(ctx, orgID)
	if err != nil {
		return OrganizationDetail{}, err
	}
	projects, err := a.projects.CountByOrg(ctx, orgID)
	if err != nil {
		return OrganizationDetail{}, err
	}
	return OrganizationDetail{Organization: org, MembersCount: members, ProjectsCount: projects}, nil
}

// UpdateOrganization changes title/contact info, admin-gated.
func (a *Authority) UpdateOrganization(ctx context.Context, orgID, requesterID primitive.ObjectID, title, contactInfo string) (models.Organization, error) {
	if _, err := a.orgs.GetByID(ctx, orgID); err != nil {
		if err == mongo.ErrNoDocuments {
			return models.Organization{}, notFound("organization not found")
		}
		return models.Organization{}, err
	}
	if err := a.authz.Authorize(ctx, requesterID, orgID); err != nil {
		return models.Organization{}, err
	}
	if title != "" {
		if err := checkTitle(title); err != nil {
			return models.Organization{}, err
		}
	}
	return a.orgs.UpdateInfo(ctx, orgID, title, contactInfo)
}

// ResetToken rotates the organization's invite token, admin-gated.
func (a *Authority) ResetToken(ctx context.Context, orgID, requesterID primitive.ObjectID) (string, error) {
	if err := a.authz.Authorize(ctx, requesterID, orgID); err != nil {
		return "", err
	}
	token, err := a.orgs.ResetToken(ctx, orgID)
	if err == mongo.ErrNoDocuments {
		return "", notFound("organization not found")
	}
	return token, err
}

// gateAndLoad is the shared precondition chain for promote/demote: the
// organization exists, the requester passes the capability gate, and the
// target membership is active.
func (a *Authority) gateAndLoad(ctx context.Context, orgID, requesterID, targetID primitive.ObjectID) (models.Membership, error) {
	if _, err := a.orgs.GetByID(ctx, orgID); err != nil {
		if err == mongo.ErrNoDocuments {
			return models.Membership{}, notFound("organization not found")
		}
		return models.Membership{}, err
	}
	if err := a.authz.Authorize(ctx, requesterID, orgID); err != nil {
		return models.Membership{}, err
	}
	target, err := a.members.GetActive(ctx, orgID, targetID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Membership{}, notFound("member not found")
		}
		return models.Membership{}, err
	}
	return target, nil
}
