package sync

import "path"

// placeItem derives the document location the new status demands and
// moves the item there when it differs from where it is.
//
// Placement only governs items already under a managed active area (a
// folder literally named or path-suffixed by the configured tasks dir):
//   - archival status, item directly in an active area: ensure the
//     archive sub-folder exists and move the item into it;
//   - non-archival status, item exactly in an archive sub-folder beneath
//     an active area: move it up one level, stripping the archive segment;
//   - anything else is a no-op.
func (e *Engine) placeItem(id, newStatus string) error {
	dir := path.Dir(id)

	if e.cfg.IsArchival(newStatus) {
		if !e.isActiveDir(dir) {
			// Already archived, or outside any managed area.
			return nil
		}

		archiveDir := path.Join(dir, e.cfg.ArchiveDir)

		err := e.vault.MkdirAll(archiveDir)
		if err != nil {
			return err
		}

		return e.vault.Move(id, path.Join(archiveDir, path.Base(id)))
	}

	if !e.isArchiveDir(dir) {
		return nil
	}

	return e.vault.Move(id, path.Join(path.Dir(dir), path.Base(id)))
}

// isActiveDir reports whether dir is an active area: its final segment is
// the configured tasks folder name.
func (e *Engine) isActiveDir(dir string) bool {
	return path.Base(dir) == e.cfg.TasksDir
}

// isArchiveDir reports whether dir is an archive sub-folder directly
// beneath an active area.
func (e *Engine) isArchiveDir(dir string) bool {
	return path.Base(dir) == e.cfg.ArchiveDir && e.isActiveDir(path.Dir(dir))
}
