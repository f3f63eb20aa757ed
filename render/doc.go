// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package render provides the default base source for mapcanvas: quad
// geometry with Web-Mercator projection and the GPU texture upload
// primitive live raster sources delegate to.
//
// ImageSource uploads through whichever capability the host's GPU
// context exposes:
//   - the gpucontext texture-creator path (NewTextureFromRGBA on
//     reallocation, UpdateData for in-place refresh), or
//   - the wgpu HAL path (CreateTexture / queue.WriteTexture) when the
//     provider exposes raw HAL device and queue handles.
//
// Hosts with their own raster pipeline can ignore this package and
// implement mapcanvas.BaseSource directly.
package render
