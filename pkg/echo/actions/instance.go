package actions

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/rds"
	"github.com/jumppad-labs/rdsecho/pkg/clients/database"
	"github.com/jumppad-labs/rdsecho/pkg/clients/logger"
	"github.com/jumppad-labs/rdsecho/pkg/config"
	"github.com/jumppad-labs/rdsecho/pkg/echo"
	"github.com/jumppad-labs/rdsecho/pkg/paging"
	"github.com/jumppad-labs/rdsecho/pkg/tags"
)

// Instance manages standalone DB instances restored from DB snapshots
type Instance struct {
	config *config.Config
	client database.RDS
	log    logger.Logger
}

func (i *Instance) Name() config.Kind {
	return config.KindInstance
}

func (i *Instance) LatestSnapshot(ctx context.Context) (*Snapshot, error) {
	source := i.config.Snapshot.DBInstanceIdentifier

	it := paging.New(func(ctx context.Context, marker *string) ([]Snapshot, *string, error) {
		out, err := i.client.DescribeDBSnapshots(ctx, &rds.DescribeDBSnapshotsInput{
			DBInstanceIdentifier: aws.String(source),
			Marker:               marker,
		})

		if err != nil {
			return nil, nil, fmt.Errorf("unable to list snapshots of %s: %w", source, err)
		}

		ss := []Snapshot{}
		for _, s := range out.DBSnapshots {
			if aws.ToString(s.Status) != echo.StatusAvailable || s.SnapshotCreateTime == nil {
				continue
			}

			ss = append(ss, Snapshot{ID: aws.ToString(s.DBSnapshotIdentifier), Created: *s.SnapshotCreateTime})
		}

		return ss, nextMarker(out.Marker), nil
	}, nil)

	ss, err := it.Collect(ctx)
	if err != nil {
		return nil, err
	}

	return newest(ss), nil
}

func (i *Instance) ProposeRestore(id string, s *Snapshot, t tags.Tags) *Proposal {
	n := i.config.New

	in := &rds.RestoreDBInstanceFromDBSnapshotInput{
		DBInstanceIdentifier:    aws.String(id),
		DBSnapshotIdentifier:    aws.String(s.ID),
		Engine:                  n.Engine,
		LicenseModel:            n.LicenseModel,
		DBInstanceClass:         n.DBInstanceClass,
		MultiAZ:                 n.MultiAZ,
		StorageType:             n.StorageType,
		Iops:                    n.Iops,
		Port:                    n.Port,
		OptionGroupName:         n.OptionGroupName,
		AutoMinorVersionUpgrade: n.AutoMinorVersionUpgrade,
		DBSubnetGroupName:       n.SubnetGroupName,
		VpcSecurityGroupIds:     n.VpcSecurityGroups,
		AvailabilityZone:        n.AvailabilityZone,
		Tags:                    tags.ToRDS(t),
	}

	p := newProposal("Proposed new DB instance", func(ctx context.Context) error {
		_, err := i.client.RestoreDBInstanceFromDBSnapshot(ctx, in)
		if err != nil {
			return fmt.Errorf("unable to restore %s from snapshot %s: %w", id, s.ID, err)
		}

		return nil
	})

	p.add("db snapshot id", s.ID)
	p.add("db instance id", id)
	p.add("engine", n.Engine)
	p.add("license model", n.LicenseModel)
	p.add("db instance class", n.DBInstanceClass)
	p.add("multi az", n.MultiAZ)
	p.add("storage type", n.StorageType)
	p.add("iops", n.Iops)
	p.add("port", n.Port)
	p.add("option group name", n.OptionGroupName)
	p.add("auto minor ver up", n.AutoMinorVersionUpgrade)
	p.add("subnet group", n.SubnetGroupName)
	p.add("security groups", n.VpcSecurityGroups)
	p.add("availability zone", n.AvailabilityZone)
	p.add("tags", t)

	return p
}

func (i *Instance) ProposeModify(r *echo.Resource) *Proposal {
	m := i.config.Mod

	in := &rds.ModifyDBInstanceInput{
		DBInstanceIdentifier:  aws.String(r.ID),
		DBParameterGroupName:  m.DBParameterGroupName,
		DBSecurityGroups:      m.DBSecurityGroups,
		BackupRetentionPeriod: m.BackupRetentionPeriod,
		ApplyImmediately:      aws.Bool(m.ApplyImmediately),
	}

	p := newProposal("Proposed DB instance modifications", func(ctx context.Context) error {
		_, err := i.client.ModifyDBInstance(ctx, in)
		if err != nil {
			return fmt.Errorf("unable to modify %s: %w", r.ID, err)
		}

		return nil
	})

	p.add("db instance id", r.ID)
	p.add("db param group name", m.DBParameterGroupName)
	p.add("db security groups", m.DBSecurityGroups)
	p.add("backup retention period", m.BackupRetentionPeriod)
	p.add("apply immediately", m.ApplyImmediately)

	return p
}

func (i *Instance) ProposeRetire(r *echo.Resource) (*Proposal, error) {
	rt := i.config.Retire

	in := &rds.DeleteDBInstanceInput{
		DBInstanceIdentifier:      aws.String(r.ID),
		SkipFinalSnapshot:         rt.SkipFinalSnapshot,
		FinalDBSnapshotIdentifier: rt.FinalDBSnapshotIdentifier,
	}

	p := newProposal("Proposed DB instance deletion", func(ctx context.Context) error {
		_, err := i.client.DeleteDBInstance(ctx, in)
		if err != nil {
			return fmt.Errorf("unable to delete %s: %w", r.ID, err)
		}

		return nil
	})

	p.add("db instance id", r.ID)
	p.add("skip final snapshot", rt.SkipFinalSnapshot)
	p.add("final snapshot id", rt.FinalDBSnapshotIdentifier)

	return p, nil
}

// nextMarker treats an empty marker as the end of the listing
func nextMarker(m *string) *string {
	if aws.ToString(m) == "" {
		return nil
	}

	return m
}
