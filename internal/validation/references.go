package validation

import (
	"fmt"

	"evalgo.org/simfabric/models"
)

// declaredNames are the name sets one compile pass will register,
// collected up front so every dangling reference can be reported in a
// single validation run.
type declaredNames struct {
	zones   map[string]bool
	links   map[string]bool
	storage map[string]bool
}

// validateReferences collects every declared name and then resolves
// every route and filesystem reference against the collected sets.
func validateReferences(doc *models.Platform) []ValidationError {
	var errs []ValidationError

	names := declaredNames{
		zones:   map[string]bool{},
		links:   map[string]bool{},
		storage: map[string]bool{},
	}

	declare := func(set map[string]bool, registry, name, path string) {
		if set[name] {
			errs = append(errs, ValidationError{
				Field:   path,
				Message: fmt.Sprintf("duplicate %s name %q", registry, name),
				Value:   name,
			})
			return
		}
		set[name] = true
	}

	for fi := range doc.Facilities {
		fac := &doc.Facilities[fi]
		fpath := fmt.Sprintf("facilities[%d]", fi)
		declare(names.zones, "zone", fac.Name, fpath+".name")

		for si := range fac.StorageSystems {
			ss := &fac.StorageSystems[si]
			spath := fmt.Sprintf("%s.storage_systems[%d]", fpath, si)
			declare(names.zones, "zone", ss.Name, spath+".name")
			declare(names.storage, "storage", ss.StorageName(), spath+".name")
			if ss.Type == models.StorageTypeOneDisk && ss.DiskCount != 1 {
				errs = append(errs, ValidationError{
					Field:   spath + ".disk_count",
					Message: "OneDisk storage takes exactly one disk",
					Value:   ss.DiskCount,
				})
			}
		}

		for ci := range fac.Clusters {
			cl := &fac.Clusters[ci]
			cpath := fmt.Sprintf("%s.clusters[%d]", fpath, ci)
			declare(names.zones, "zone", cl.Name, cpath+".name")
			for i := 0; i < cl.Count; i++ {
				if sn := cl.NodeStorageName(i); sn != "" {
					declare(names.storage, "storage", sn, cpath+".node.storage.name")
				}
			}
		}

		for li := range fac.Links {
			lpath := fmt.Sprintf("%s.links[%d]", fpath, li)
			declare(names.links, "link", fac.Links[li].Name, lpath+".name")
		}
	}

	for fi := range doc.Facilities {
		fac := &doc.Facilities[fi]
		for ri := range fac.Routes {
			rt := &fac.Routes[ri]
			rpath := fmt.Sprintf("facilities[%d].routes[%d]", fi, ri)
			if !names.zones[rt.Src] {
				errs = append(errs, dangling(rpath+".src", "zone", rt.Src))
			}
			if !names.zones[rt.Dst] {
				errs = append(errs, dangling(rpath+".dst", "zone", rt.Dst))
			}
			for li, ln := range rt.Links {
				if !names.links[ln] {
					errs = append(errs, dangling(fmt.Sprintf("%s.links[%d]", rpath, li), "link", ln))
				}
			}
		}
	}

	for fsi := range doc.Filesystems {
		fs := &doc.Filesystems[fsi]
		fspath := fmt.Sprintf("filesystems[%d]", fsi)
		switch {
		case fs.StorageSystem != "":
			ss := doc.FindStorageSystem(fs.StorageSystem)
			if ss == nil {
				errs = append(errs, dangling(fspath+".storage_system", "storage system", fs.StorageSystem))
			}
		case fs.Cluster != "":
			cl := doc.FindCluster(fs.Cluster)
			if cl == nil {
				errs = append(errs, dangling(fspath+".cluster", "cluster", fs.Cluster))
			} else if cl.Node.Storage == nil {
				errs = append(errs, ValidationError{
					Field:   fspath + ".cluster",
					Message: fmt.Sprintf("cluster %q carries no node storage to mount onto", fs.Cluster),
					Value:   fs.Cluster,
				})
			}
		}
	}

	return errs
}

func dangling(path, registry, name string) ValidationError {
	return ValidationError{
		Field:   path,
		Message: fmt.Sprintf("references unknown %s %q", registry, name),
		Value:   name,
	}
}
